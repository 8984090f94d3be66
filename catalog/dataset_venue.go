package catalog

// venueClasses catalogs the venue management classes from openreview.venue.
// Their upstream docstrings embed fenced Python examples; those example
// blocks are trimmed here and the descriptive sections kept.
func venueClasses() []Class {
	return []Class{
		{
			Name: "Venue",
			Docstring: `Represents a conference or workshop venue in OpenReview with comprehensive management capabilities.

The Venue class is the main orchestrator for managing academic conferences and workshops on OpenReview.
It handles the complete lifecycle of a venue including submissions, reviews, decisions, and committee management.

KEY ATTRIBUTES:
- venue_id: Main identifier for the venue (e.g., 'ICML.cc/2025/Conference')
- name: Full official name of the venue
- short_name: Abbreviated name displayed in the UI
- website: Conference website URL
- contact: Contact email for venue communications
- start_date: Venue start date (format: 'YYYY/MM/DD')

COMMITTEE STRUCTURE:
- Program Chairs: Overall conference organizers
- Senior Area Chairs: Supervise area chairs (optional)
- Area Chairs: Manage reviewers and make meta-review recommendations (optional)
- Reviewers: Write reviews for submissions
- Ethics Chairs/Reviewers: Handle ethics reviews for flagged submissions (optional)
- Publication Chairs: Manage camera-ready submissions (optional)
- Authors: Paper submitters

WORKFLOW STAGES:
The venue workflow consists of multiple stages that can be configured and activated:

1. Submission Stage (submission_stage):
   - Handles paper submissions
   - Supports blind/double-blind configurations
   - Allows multiple deadlines (first deadline + full submission deadline)
   - Manages withdrawal and desk rejection processes

2. Expertise Selection Stage (expertise_selection_stage):
   - Committee members select papers they have expertise in
   - Used to inform automated assignment

3. Bid Stage (bid_stages):
   - Committee members bid on papers they want to review
   - Multiple bid stages can be configured for different committees

4. Assignment/Matching:
   - Automated or manual reviewer assignments
   - Conflict detection and management
   - Affinity score computation for optimal matching

5. Review Stage (review_stage):
   - Reviewers write and submit reviews
   - Configurable anonymity and visibility settings
   - Optional review rebuttal stage

6. Review Rebuttal Stage (review_rebuttal_stage):
   - Authors respond to reviews
   - Time-limited response period

7. Ethics Review Stage (ethics_review_stage):
   - Special review process for flagged submissions
   - Optional ethics committee involvement

8. Meta-Review Stage (meta_review_stage):
   - Area chairs write recommendations
   - Synthesis of reviewer feedback

9. Decision Stage (decision_stage):
   - Program chairs make accept/reject decisions
   - Can upload decisions in bulk via CSV
   - Sends decision notifications

10. Comment Stage (comment_stage):
    - Public and official comments
    - Author-reviewer discussion period

11. Registration Stages (registration_stages):
    - Camera-ready submission
    - Copyright agreements
    - Final materials collection

KEY METHODS:

Setup Methods:
- setup(): Initialize venue groups, invitations, and committee structure. You only need to run this once.
- set_main_settings(): Configure basic venue parameters from request form
- create_submission_stage(): Activate the submission process
- create_review_stage(): Enable review submissions
- create_meta_review_stage(): Enable meta-reviews
- create_decision_stage(): Enable decision posting
- create_bid_stages(): Set up bidding for committees
- create_comment_stage(): Enable commenting functionality

Committee Management:
- recruit_reviewers(): Send recruitment emails to potential reviewers
- setup_committee_matching(): Configure automated assignment system
- set_assignments(): Deploy reviewer assignments
- unset_assignments(): Remove assignments

Submission Management:
- get_submissions(): Retrieve all submissions with optional filters
- post_decision_stage(): Update submission visibility after decisions
- send_decision_notifications(): Email authors with decisions

Matching/Assignment:
- setup_committee_matching(): Initialize assignment algorithms
- set_assignments(): Deploy computed assignments
- set_track_sac_assignments(): Assign senior area chairs to tracks

Statistics:
- compute_reviewers_stats(): Calculate reviewer metrics
- compute_acs_stats(): Calculate area chair metrics

Special Features:
- iThenticate plagiarism checking integration
- Track-based submissions with specialized workflows
- Automated conflict-of-interest detection
- Bulk operations support
- Ethics review flagging and workflows

:param client: OpenReview client instance (API 2)
:type client: openreview.api.OpenReviewClient
:param venue_id: Unique identifier for the venue (e.g., 'Conference.org/2025')
:type venue_id: str
:param support_user: Support user group ID (typically 'openreview.net/Support')
:type support_user: str`,
			Module: "openreview.venue",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(client, venue_id, support_user)", Docstring: "Initialize a Venue object. Sets up default configuration for all venue properties."},
				{Name: "set_main_settings", Signature: "set_main_settings(request_note)", Docstring: "Configure main venue settings from a venue request form note. Extracts venue name, dates, committee names, and reviewer settings."},
				{Name: "setup", Signature: "setup(program_chair_ids=[], publication_chairs_ids=[])", Docstring: "Initialize the venue infrastructure: create meta invitation, venue group, program chairs, reviewers, area chairs, senior area chairs, ethics committees, and publication chairs groups."},
				{Name: "create_submission_stage", Signature: "create_submission_stage()", Docstring: "Activate submission stage: create submission invitation, withdrawal/desk rejection invitations, post-submission edits, PC revisions, reviewer/AC group invitations, and optional plagiarism checking."},
				{Name: "create_review_stage", Signature: "create_review_stage()", Docstring: "Activate review stage: create review invitation for reviewers to submit reviews."},
				{Name: "create_review_rebuttal_stage", Signature: "create_review_rebuttal_stage()", Docstring: "Activate review rebuttal stage: enable authors to respond to reviews."},
				{Name: "create_meta_review_stage", Signature: "create_meta_review_stage()", Docstring: "Activate meta-review stage: create invitation for area chairs to write meta-reviews/recommendations."},
				{Name: "create_decision_stage", Signature: "create_decision_stage()", Docstring: "Activate decision stage: create decision invitation and optionally process bulk decisions from CSV file."},
				{Name: "create_bid_stages", Signature: "create_bid_stages()", Docstring: "Create bid invitations for committee members to express interest in reviewing papers."},
				{Name: "create_comment_stage", Signature: "create_comment_stage()", Docstring: "Activate commenting: create official comment invitation, optional public comments, and chat functionality."},
				{Name: "create_ethics_review_stage", Signature: "create_ethics_review_stage()", Docstring: "Activate ethics review stage: create ethics flag invitation, ethics review invitations, setup ethics reviewer matching, and flag specified submissions."},
				{Name: "get_submissions", Signature: "get_submissions(venueid=None, accepted=False, sort=None, details=None)", Docstring: "Retrieve submissions. Can filter by venueid, acceptance status, with optional sorting and detail inclusion (like direct replies)."},
				{Name: "recruit_reviewers", Signature: "recruit_reviewers(title, message, invitees=[], reviewers_name='Reviewers', remind=False, invitee_names=[], retry_declined=False, contact_info='', reduced_load_on_decline=None, allow_accept_with_reduced_load=False, default_load=0, allow_overlap_official_committee=False, accept_recruitment_template=None)", Docstring: "Send recruitment invitations to potential reviewers/committee members. Supports reminders, decline retries, and reduced load options."},
				{Name: "setup_committee_matching", Signature: "setup_committee_matching(committee_id=None, compute_affinity_scores=False, compute_conflicts=False, compute_conflicts_n_years=None, alternate_matching_group=None, submission_track=None)", Docstring: "Initialize automated assignment system for a committee. Optionally compute affinity scores, detect conflicts, and set up alternate matching groups."},
				{Name: "set_assignments", Signature: "set_assignments(assignment_title, committee_id, enable_reviewer_reassignment=False, overwrite=False)", Docstring: "Deploy computed assignments for a committee. Can enable reassignment and overwrite existing assignments."},
				{Name: "unset_assignments", Signature: "unset_assignments(assignment_title, committee_id)", Docstring: "Remove assignments for a committee based on assignment title."},
				{Name: "post_decisions", Signature: "post_decisions(decisions_file, api1_client=None)", Docstring: "Post decisions in bulk from CSV file. Format: paper_number,decision,comment. Posts decisions and updates request form status."},
				{Name: "post_decision_stage", Signature: "post_decision_stage(reveal_all_authors=False, reveal_authors_accepted=False, decision_heading_map=None, submission_readers=None, hide_fields=[])", Docstring: "Update submission visibility after decisions: set venue IDs, update readers, hide/reveal author information, generate bibtex."},
				{Name: "send_decision_notifications", Signature: "send_decision_notifications(decision_options, messages)", Docstring: "Send decision notification emails to authors with customized messages per decision type."},
				{Name: "set_track_sac_assignments", Signature: "set_track_sac_assignments(track_sac_file, conflict_policy=None, conflict_n_years=None, track_ac_file=None)", Docstring: "Assign senior area chairs to tracks from CSV. Optionally assign area chairs to SACs. Performs conflict checking."},
				{Name: "compute_reviewers_stats", Signature: "compute_reviewers_stats()", Docstring: "Calculate reviewer statistics: assignment count, review count, late days, discussion replies. Posts as tags."},
				{Name: "compute_acs_stats", Signature: "compute_acs_stats()", Docstring: "Calculate area chair statistics: assignment count, meta-review count, late days, discussion replies. Posts as tags."},
				{Name: "get_committee_names", Signature: "get_committee_names()", Docstring: "Get list of committee names based on venue configuration (reviewers, ACs, SACs)."},
				{Name: "get_roles", Signature: "get_roles()", Docstring: "Get all configured committee roles including ethics chairs and reviewers."},
				{Name: "get_submission_id", Signature: "get_submission_id()", Docstring: "Get the submission invitation ID."},
				{Name: "get_reviewers_id", Signature: "get_reviewers_id(number=None, anon=False, submitted=False)", Docstring: "Get reviewer group ID. Can get paper-specific, anonymous, or submitted reviewers group."},
				{Name: "get_area_chairs_id", Signature: "get_area_chairs_id(number=None, anon=False)", Docstring: "Get area chair group ID. Can get paper-specific or anonymous AC group."},
				{Name: "get_senior_area_chairs_id", Signature: "get_senior_area_chairs_id(number=None)", Docstring: "Get senior area chair group ID. Can get paper-specific SAC group."},
				{Name: "get_program_chairs_id", Signature: "get_program_chairs_id()", Docstring: "Get program chairs group ID."},
				{Name: "get_authors_id", Signature: "get_authors_id(number=None)", Docstring: "Get authors group ID. Can get paper-specific authors group."},
				{Name: "get_bid_id", Signature: "get_bid_id(committee_id)", Docstring: "Get bid invitation ID for a committee."},
				{Name: "get_assignment_id", Signature: "get_assignment_id(committee_id, deployed=False, invite=False)", Docstring: "Get assignment invitation ID. Can get proposed, deployed, or invite assignment IDs."},
				{Name: "get_recommendation_id", Signature: "get_recommendation_id(committee_id=None)", Docstring: "Get recommendation invitation ID for a committee (defaults to reviewers)."},
				{Name: "get_message_sender", Signature: "get_message_sender()", Docstring: "Generate email sender configuration with venue short name and valid notification email address."},
				{Name: "ithenticate_create_and_upload_submission", Signature: "ithenticate_create_and_upload_submission()", Docstring: "Create iThenticate submissions and upload PDFs for plagiarism checking. Requires iThenticate configuration."},
				{Name: "ithenticate_request_similarity_report", Signature: "ithenticate_request_similarity_report()", Docstring: "Request similarity reports from iThenticate for all uploaded submissions."},
				{Name: "poll_ithenticate_for_status", Signature: "poll_ithenticate_for_status()", Docstring: "Poll iThenticate for upload and similarity report status updates."},
			},
		},
		{
			Name: "GroupBuilder",
			Docstring: `Helper class for building and managing OpenReview group infrastructure for a venue.

The GroupBuilder class is responsible for creating and maintaining all the groups (committees, roles, and organizational units)
needed to operate a conference or workshop on OpenReview. It works in conjunction with the Venue class to materialize the
venue's organizational structure.

WHAT IS A GROUP IN OPENREVIEW:
Groups in OpenReview represent collections of users and serve multiple purposes:
- Committees: Reviewers, Area Chairs, Senior Area Chairs, Program Chairs
- Roles: Authors, Ethics Reviewers, Publication Chairs
- Paper-specific groups: Reviewers for Paper 1, Area Chairs for Paper 2, etc.
- Administrative groups: Invited reviewers, Declined reviewers, Accepted authors

The GroupBuilder is automatically instantiated by the Venue class (available as venue.group_builder)
and should not be created directly. Most users won't interact with GroupBuilder directly.

THE VENUE/DOMAIN GROUP:
The most important group created by GroupBuilder is the venue group itself (also called the domain group).
This group:
- Serves as the root of all venue-related groups
- Contains metadata and configuration for the entire venue
- Synchronizes its content with Venue class properties
- Controls permissions and access for the venue

CREATED BY create_venue_group():
The venue group's content field stores critical configuration including:
- submission_id: ID of the submission invitation
- meta_invitation_id: Root invitation for edits
- program_chairs_id: Program chairs group ID
- reviewers_id, area_chairs_id, senior_area_chairs_id: Committee group IDs
- Various invitation IDs for reviews, decisions, comments, etc.
- Workflow configuration (public submissions, email settings, etc.)
- Stage configurations (review_name, decision_name, etc.)

SYNCHRONIZATION:
Whenever venue properties change, create_venue_group() updates the domain group to reflect these changes.
This ensures the OpenReview platform always has current venue configuration.

KEY METHODS:

Venue Infrastructure:
- create_venue_group(): Creates/updates the root venue group with all configuration
- build_groups(): Creates parent groups in the hierarchy (e.g., ICML.cc, ICML.cc/2025)
- add_to_active_venues(): Registers venue in the global active venues list

Committee Groups:
- create_program_chairs_group(): Creates the program chairs committee
- create_reviewers_group(): Creates reviewer committees (supports multiple reviewer roles)
- create_area_chairs_group(): Creates area chair committees (if enabled)
- create_senior_area_chairs_group(): Creates senior area chair committees (if enabled)
- create_ethics_reviewers_group(): Creates ethics reviewer committee
- create_ethics_chairs_group(): Creates ethics chair committee
- create_publication_chairs_group(): Creates publication chair committee

Special Purpose Groups:
- create_authors_group(): Creates authors group and accepted authors subgroup
- create_recruitment_committee_groups(): Creates Invited/Declined subgroups for recruitment
- set_external_reviewer_recruitment_groups(): Sets up external reviewer infrastructure
- create_preferred_emails_readers_group(): Creates group for preferred email access

Utility Methods:
- post_group(): Posts a group edit to OpenReview
- get_update_content(): Computes differences between current and new content
- update_web_field(): Updates a group's web interface
- get_reviewer_identity_readers(): Gets appropriate readers for reviewer identities
- get_area_chair_identity_readers(): Gets appropriate readers for AC identities
- set_impersonators(): Sets who can impersonate the venue group

GROUP PERMISSIONS:
GroupBuilder carefully manages permissions for each group:
- readers: Who can see the group exists and read its member list
- writers: Who can modify the group
- signatures: Who created/modified the group
- signatories: Who can sign on behalf of the group
- members: Users who belong to the group

TEMPLATE-BASED WORKFLOWS:
For venues using OpenReview templates, GroupBuilder uses special invitations to trigger
automated processes that create groups with pre-configured webfields and permissions.

WEBFIELDS:
Each group type gets a customized web interface (webfield) that provides:
- Appropriate navigation and task lists
- Filtered views of submissions and reviews
- Committee-specific functionality
- Proper visualization of the reviewing workflow

SYNCHRONIZATION MECHANISM:
The create_venue_group() method:
1. Reads current venue group content from OpenReview
2. Builds new content from Venue class properties
3. Computes differences using get_update_content()
4. Only posts updates if there are changes
5. This keeps the OpenReview platform in sync with code

IMPORTANT NOTES:
- GroupBuilder is used internally by Venue - users typically don't call it directly
- All group operations are idempotent - safe to run multiple times
- Groups are created lazily - only when needed
- Paper-specific groups are created when submissions are received
- The venue group is the "source of truth" for venue configuration

WORKFLOW INTEGRATION:
GroupBuilder works with other Venue components:
- InvitationBuilder uses group IDs to create invitations
- Recruitment uses Invited/Declined groups to track recruitment status
- Matching uses committee groups to assign reviewers
- The venue group content is read by all these components

:param venue: Venue instance that owns this GroupBuilder
:type venue: openreview.venue.Venue`,
			Module: "openreview.venue",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(venue)", Docstring: "Initialize GroupBuilder with a Venue instance. Sets up client connections and extracts venue configuration."},
				{Name: "create_venue_group", Signature: "create_venue_group()", Docstring: "Create or update the root venue/domain group with complete configuration. This is the most important method - it synchronizes all venue settings to the OpenReview platform by updating the venue group's content field with IDs, settings, and workflow configuration."},
				{Name: "build_groups", Signature: "build_groups(venue_id)", Docstring: "Create parent groups in the hierarchy (e.g., 'ICML.cc', 'ICML.cc/2025'). Returns list of created groups."},
				{Name: "post_group", Signature: "post_group(group)", Docstring: "Post a group edit to OpenReview and return the updated group. Wraps client.post_group_edit with venue-specific metadata."},
				{Name: "get_update_content", Signature: "get_update_content(current_content, new_content)", Docstring: "Compute content differences between current and new group content. Returns only changed fields to minimize updates."},
				{Name: "update_web_field", Signature: "update_web_field(group_id, web)", Docstring: "Update a group's webfield (web interface code)."},
				{Name: "create_program_chairs_group", Signature: "create_program_chairs_group(program_chair_ids=[])", Docstring: "Create the Program Chairs group with specified members. Program chairs have administrative privileges over the venue."},
				{Name: "create_authors_group", Signature: "create_authors_group()", Docstring: "Create the Authors group (all submitting authors) and Authors/Accepted subgroup."},
				{Name: "create_reviewers_group", Signature: "create_reviewers_group()", Docstring: "Create reviewer committee groups. Supports multiple reviewer roles if configured in venue.reviewer_roles."},
				{Name: "create_area_chairs_group", Signature: "create_area_chairs_group()", Docstring: "Create area chair committee groups. Supports multiple AC roles if configured in venue.area_chair_roles."},
				{Name: "create_senior_area_chairs_group", Signature: "create_senior_area_chairs_group()", Docstring: "Create senior area chair committee groups. Supports multiple SAC roles if configured in venue.senior_area_chair_roles."},
				{Name: "create_ethics_reviewers_group", Signature: "create_ethics_reviewers_group()", Docstring: "Create ethics reviewers committee group for handling ethics reviews."},
				{Name: "create_ethics_chairs_group", Signature: "create_ethics_chairs_group()", Docstring: "Create ethics chairs committee group for managing ethics review process."},
				{Name: "create_publication_chairs_group", Signature: "create_publication_chairs_group(publication_chairs_ids)", Docstring: "Create publication chairs group with specified members. Publication chairs manage camera-ready submissions."},
				{Name: "create_preferred_emails_readers_group", Signature: "create_preferred_emails_readers_group()", Docstring: "Create group that controls who can read preferred email addresses of committee members."},
				{Name: "add_to_active_venues", Signature: "add_to_active_venues()", Docstring: "Register this venue in the global 'active_venues' group for venue discovery and monitoring."},
				{Name: "create_recruitment_committee_groups", Signature: "create_recruitment_committee_groups(committee_name)", Docstring: "Create Invited and Declined subgroups for a committee to track recruitment status."},
				{Name: "set_external_reviewer_recruitment_groups", Signature: "set_external_reviewer_recruitment_groups(name='External_Reviewers', create_paper_groups=False, is_ethics_reviewer=False)", Docstring: "Set up group infrastructure for external reviewer recruitment. Creates parent groups and optionally paper-specific groups."},
				{Name: "get_reviewer_identity_readers", Signature: "get_reviewer_identity_readers(number)", Docstring: "Get the list of groups that can read reviewer identities for a specific paper number."},
				{Name: "get_area_chair_identity_readers", Signature: "get_area_chair_identity_readers(number)", Docstring: "Get the list of groups that can read area chair identities for a specific paper number."},
				{Name: "get_senior_area_chair_identity_readers", Signature: "get_senior_area_chair_identity_readers(number)", Docstring: "Get the list of groups that can read senior area chair identities for a specific paper number."},
				{Name: "get_reviewer_paper_group_readers", Signature: "get_reviewer_paper_group_readers(number)", Docstring: "Get the list of groups that can read the reviewer group for a specific paper."},
				{Name: "get_reviewer_paper_group_writers", Signature: "get_reviewer_paper_group_writers(number)", Docstring: "Get the list of groups that can modify the reviewer group for a specific paper."},
				{Name: "get_area_chair_paper_group_readers", Signature: "get_area_chair_paper_group_readers(number)", Docstring: "Get the list of groups that can read the area chair group for a specific paper."},
				{Name: "set_impersonators", Signature: "set_impersonators(impersonators)", Docstring: "Set the list of users/groups who can impersonate the venue group."},
			},
		},
	}
}
