package catalog

// clientV1Class catalogs openreview.Client, the legacy API 1 client.
func clientV1Class() Class {
	return Class{
		Name: "Client",
		Docstring: `Client for API 1 interactions (Legacy API).

:param baseurl: URL to the host, example: https://api.openreview.net. If none is provided, it defaults to the environment variable OPENREVIEW_API_BASEURL
:type baseurl: str, optional
:param username: OpenReview username. If none is provided, it defaults to the environment variable OPENREVIEW_USERNAME
:type username: str, optional
:param password: OpenReview password. If none is provided, it defaults to the environment variable OPENREVIEW_PASSWORD
:type password: str, optional
:param token: Session token. This token can be provided instead of the username and password if the user had already logged in
:type token: str, optional`,
		Module: "openreview",
		Methods: []Method{
			{Name: "__init__", Signature: "__init__(baseurl=None, username=None, password=None, token=None)", Docstring: "Initialize the OpenReview API 1 client"},
			{Name: "impersonate", Signature: "impersonate(group_id)", Docstring: "Impersonate a group"},
			{Name: "login_user", Signature: "login_user(username=None, password=None)", Docstring: "Logs in a registered user"},
			{Name: "get_group", Signature: "get_group(id)", Docstring: "Get a single Group by id if available"},
			{Name: "get_invitation", Signature: "get_invitation(id)", Docstring: "Get a single invitation by id if available"},
			{Name: "get_note", Signature: "get_note(id)", Docstring: "Get a single Note by id if available"},
			{Name: "get_tag", Signature: "get_tag(id)", Docstring: "Get a single Tag by id if available"},
			{Name: "get_edge", Signature: "get_edge(id)", Docstring: "Get a single Edge by id if available"},
			{Name: "get_profile", Signature: "get_profile(email_or_id=None)", Docstring: "Get a single Profile by id, if available"},
			{Name: "get_profiles", Signature: "get_profiles(ids=None, emails=None)", Docstring: "Get a list of Profiles by ids or emails"},
			{Name: "search_profiles", Signature: "search_profiles(confirmedEmails=None, emails=None, ids=None, term=None, first=None, middle=None, last=None, fullname=None)", Docstring: "Gets a list of profiles using either their ids or corresponding emails"},
			{Name: "get_pdf", Signature: "get_pdf(id, is_reference=False)", Docstring: "Gets the binary content of a pdf using the provided note/reference id"},
			{Name: "get_attachment", Signature: "get_attachment(id, field_name)", Docstring: "Gets the binary content of an attachment using the provided note id"},
			{Name: "get_venues", Signature: "get_venues(id=None, ids=None, invitations=None)", Docstring: "Gets list of Note objects based on the filters provided"},
			{Name: "put_attachment", Signature: "put_attachment(file, invitation, name)", Docstring: "Uploads a file to the openreview server"},
			{Name: "post_profile", Signature: "post_profile(profile)", Docstring: "Updates a Profile"},
			{Name: "get_groups", Signature: "get_groups(id=None, regex=None, member=None, host=None, signatory=None, web=None, limit=None, offset=None, with_count=None, sort=None, stream=False)", Docstring: "Gets list of Group objects based on the filters provided"},
			{Name: "get_all_groups", Signature: "get_all_groups(id=None, regex=None, member=None, host=None, signatory=None, web=None, with_count=None, sort=None)", Docstring: "Gets list of Group objects based on the filters provided"},
			{Name: "get_invitations", Signature: "get_invitations(id=None, ids=None, invitee=None, replytoNote=None, replyForum=None, signature=None, note=None, regex=None, tags=None, limit=None, offset=None, minduedate=None, duedate=None, pastdue=None, replyto=None, details=None, expired=None, sort=None, type=None, with_count=None)", Docstring: "Gets list of Invitation objects based on the filters provided"},
			{Name: "get_all_invitations", Signature: "get_all_invitations(id=None, ids=None, invitee=None, replytoNote=None, replyForum=None, signature=None, note=None, regex=None, tags=None, minduedate=None, duedate=None, pastdue=None, replyto=None, details=None, expired=None, sort=None, type=None, with_count=None)", Docstring: "Gets list of Invitation objects based on the filters provided"},
			{Name: "get_notes", Signature: "get_notes(id=None, paperhash=None, forum=None, invitation=None, replyto=None, tauthor=None, signature=None, writer=None, trash=None, number=None, content=None, limit=None, offset=None, mintcdate=None, details=None, sort=None, with_count=None)", Docstring: "Gets list of Note objects based on the filters provided"},
			{Name: "get_all_notes", Signature: "get_all_notes(id=None, paperhash=None, forum=None, invitation=None, replyto=None, tauthor=None, signature=None, writer=None, trash=None, number=None, content=None, mintcdate=None, details=None, sort=None, with_count=None)", Docstring: "Gets list of Note objects based on the filters provided"},
			{Name: "post_tag", Signature: "post_tag(tag)", Docstring: "Posts the tag"},
			{Name: "post_tags", Signature: "post_tags(tags)", Docstring: "Posts the list of Tags"},
			{Name: "get_tags", Signature: "get_tags(id=None, invitation=None, forum=None, signature=None, tag=None, limit=None, offset=None, with_count=None)", Docstring: "Gets a list of Tag objects based on the filters provided"},
			{Name: "get_all_tags", Signature: "get_all_tags(id=None, invitation=None, forum=None, signature=None, tag=None, limit=None, offset=None, with_count=None)", Docstring: "Gets a list of Tag objects based on the filters provided"},
			{Name: "get_edges", Signature: "get_edges(id=None, invitation=None, head=None, tail=None, label=None, limit=None, offset=None, with_count=None, trash=None)", Docstring: "Returns a list of Edge objects based on the filters provided"},
			{Name: "get_all_edges", Signature: "get_all_edges(id=None, invitation=None, head=None, tail=None, label=None, limit=None, offset=None, with_count=None, trash=None)", Docstring: "Returns a list of Edge objects based on the filters provided"},
			{Name: "get_edges_count", Signature: "get_edges_count(id=None, invitation=None, head=None, tail=None, label=None)", Docstring: "Returns edge count based on the filters provided"},
			{Name: "get_grouped_edges", Signature: "get_grouped_edges(invitation=None, head=None, tail=None, label=None, groupby='head', select=None, limit=None, offset=None)", Docstring: "Returns a list of JSON objects where each one represents a group of edges"},
			{Name: "get_archived_edges", Signature: "get_archived_edges(invitation)", Docstring: "Returns a list of Edge objects based on the filters provided"},
			{Name: "post_edge", Signature: "post_edge(edge)", Docstring: "Posts the edge"},
			{Name: "post_edges", Signature: "post_edges(edges)", Docstring: "Posts the list of Edges"},
			{Name: "delete_edges", Signature: "delete_edges(invitation, label=None, head=None, tail=None, wait_to_finish=False)", Docstring: "Deletes edges by a combination of invitation id and optional filters"},
			{Name: "delete_tags", Signature: "delete_tags(invitation, tag=None, wait_to_finish=False)", Docstring: "Deletes tags by a combination of invitation id and optional filters"},
			{Name: "delete_note", Signature: "delete_note(note_id)", Docstring: "Deletes the note"},
			{Name: "delete_profile_reference", Signature: "delete_profile_reference(reference_id)", Docstring: "Deletes the Profile Reference specified by reference_id"},
			{Name: "delete_group", Signature: "delete_group(group_id)", Docstring: "Deletes the group"},
			{Name: "post_message", Signature: "post_message(subject, recipients, message, invitation=None, signature=None, ignoreRecipients=None, sender=None, replyTo=None, parentGroup=None)", Docstring: "Posts a message to the recipients and consequently sends them emails"},
			{Name: "add_members_to_group", Signature: "add_members_to_group(group, members)", Docstring: "Adds members to a group"},
			{Name: "remove_members_from_group", Signature: "remove_members_from_group(group, members)", Docstring: "Removes members from a group"},
			{Name: "search_notes", Signature: "search_notes(term, content='all', group='all', source='all', limit=None, offset=None)", Docstring: "Searches notes based on term, content, group and source as the criteria"},
			{Name: "get_notes_by_ids", Signature: "get_notes_by_ids(ids)", Docstring: "Get notes by their IDs"},
			{Name: "get_messages", Signature: "get_messages(to=None, subject=None, status=None, offset=None, limit=None)", Docstring: "Retrieves all the messages sent to a list of usernames or emails"},
			{Name: "get_process_logs", Signature: "get_process_logs(id=None, invitation=None, status=None)", Docstring: "Retrieves the logs of the process function executed by an Invitation"},
		},
	}
}

// clientV2Class catalogs openreview.api.OpenReviewClient, the current API 2
// client and the default primary class for the derived-functions view.
func clientV2Class() Class {
	return Class{
		Name: "OpenReviewClient",
		Docstring: `OpenReviewClient for API interactions.

:param baseurl: URL to the host, example: https://api2.openreview.net (should be replaced by 'host' name). If none is provided, it defaults to the environment variable OPENREVIEW_API_BASEURL_V2
:type baseurl: str, optional
:param username: OpenReview username. If none is provided, it defaults to the environment variable OPENREVIEW_USERNAME
:type username: str, optional
:param password: OpenReview password. If none is provided, it defaults to the environment variable OPENREVIEW_PASSWORD
:type password: str, optional
:param token: Session token. This token can be provided instead of the username and password if the user had already logged in
:type token: str, optional
:param expiresIn: Time in seconds before the token expires. If none is set the value will be set automatically to one hour. The max value that it can be set to is 1 week.
:type expiresIn: number, optional`,
		Module: "openreview.api",
		Methods: []Method{
			// Authentication
			{Name: "__init__", Signature: "__init__(baseurl=None, username=None, password=None, token=None, tokenExpiresIn=None)", Docstring: "Initialize the OpenReview client"},
			{Name: "login_user", Signature: "login_user(username=None, password=None, expiresIn=None)", Docstring: "Logs in a registered user"},
			{Name: "register_user", Signature: "register_user(email=None, fullname=None, password=None)", Docstring: "Registers a new user"},
			{Name: "activate_user", Signature: "activate_user(token, content)", Docstring: "Activates a newly registered user"},
			{Name: "impersonate", Signature: "impersonate(group_id)", Docstring: "Impersonate a group"},
			{Name: "confirm_alternate_email", Signature: "confirm_alternate_email(profile_id, alternate_email, activation_token=None)", Docstring: "Confirms an alternate email address"},
			{Name: "activate_email_with_token", Signature: "activate_email_with_token(email, token, activation_token=None)", Docstring: "Activates an email address"},
			{Name: "get_activatable", Signature: "get_activatable(token=None)", Docstring: "Get activatable user with token"},
			// Groups
			{Name: "get_group", Signature: "get_group(id, details=None)", Docstring: "Get a single Group by id if available"},
			{Name: "get_groups", Signature: "get_groups(id=None, prefix=None, member=None, members=None, signatory=None, web=None, limit=None, offset=None, after=None, stream=None, sort=None, with_count=None)", Docstring: "Gets list of Group objects based on the filters provided. The Groups that will be returned match all the criteria passed in the parameters."},
			{Name: "get_all_groups", Signature: "get_all_groups(id=None, parent=None, prefix=None, member=None, members=None, domain=None, signatory=None, web=None, sort=None, with_count=None)", Docstring: "Gets list of Group objects based on the filters provided. The Groups that will be returned match all the criteria passed in the parameters."},
			{Name: "post_group_edit", Signature: "post_group_edit(invitation, signatures=None, group=None, readers=None, writers=None, content=None, replacement=None, await_process=False, flush_members_cache=True)", Docstring: "Posts a group edit"},
			{Name: "get_group_edit", Signature: "get_group_edit(id)", Docstring: "Get a single group edit by id if available"},
			{Name: "get_group_edits", Signature: "get_group_edits(group_id=None, invitation=None, with_count=False, sort=None, trash=None)", Docstring: "Gets a list of edits for a group. The edits that will be returned match all the criteria passed in the parameters."},
			{Name: "add_members_to_group", Signature: "add_members_to_group(group, members)", Docstring: "Adds members to a group"},
			{Name: "remove_members_from_group", Signature: "remove_members_from_group(group, members)", Docstring: "Removes members from a group"},
			{Name: "delete_group", Signature: "delete_group(group_id)", Docstring: "Deletes the group"},
			{Name: "flush_members_cache", Signature: "flush_members_cache(group_id=None)", Docstring: "Flushes the members cache for a group"},
			// Invitations
			{Name: "get_invitation", Signature: "get_invitation(id)", Docstring: "Get a single invitation by id if available"},
			{Name: "get_invitations", Signature: "get_invitations(id=None, ids=None, invitee=None, replytoNote=None, replyForum=None, signature=None, note=None, prefix=None, tags=None, limit=None, offset=None, after=None, minduedate=None, duedate=None, pastdue=None, replyto=None, details=None, expired=None, sort=None, type=None, with_count=None, invitation=None, trash=None)", Docstring: "Gets list of Invitation objects based on the filters provided. The Invitations that will be returned match all the criteria passed in the parameters."},
			{Name: "get_all_invitations", Signature: "get_all_invitations(id=None, ids=None, invitee=None, replytoNote=None, replyForum=None, signature=None, note=None, prefix=None, tags=None, minduedate=None, duedate=None, pastdue=None, replyto=None, details=None, expired=None, sort=None, type=None, with_count=None, invitation=None, trash=None)", Docstring: "Gets list of Invitation objects based on the filters provided. The Invitations that will be returned match all the criteria passed in the parameters."},
			{Name: "post_invitation_edit", Signature: "post_invitation_edit(invitations, readers=None, writers=None, signatures=None, invitation=None, content=None, replacement=None, domain=None, await_process=False)", Docstring: "Posts an invitation edit"},
			{Name: "get_invitation_edit", Signature: "get_invitation_edit(id)", Docstring: "Get a single invitation edit by id if available"},
			{Name: "get_invitation_edits", Signature: "get_invitation_edits(invitation_id=None, invitation=None, with_count=None, sort=None)", Docstring: "Gets a list of edits for an invitation. The edits that will be returned match all the criteria passed in the parameters."},
			{Name: "get_invitation_date_process_job", Signature: "get_invitation_date_process_job(job_id)", Docstring: "Get date process job for an invitation"},
			{Name: "reschedule_date_process_jobs", Signature: "reschedule_date_process_jobs(invitation_id)", Docstring: "Reschedule date process jobs for an invitation"},
			// Notes
			{Name: "get_note", Signature: "get_note(id, details=None)", Docstring: "Get a single Note by id if available"},
			{Name: "get_notes", Signature: "get_notes(id=None, paperhash=None, forum=None, invitation=None, parent_invitations=None, replyto=None, tauthor=None, signature=None, transitive_members=None, signatures=None, writer=None, trash=None, number=None, content=None, limit=None, offset=None, after=None, mintcdate=None, domain=None, details=None, sort=None, with_count=None, stream=None)", Docstring: "Gets list of Note objects based on the filters provided. The Notes that will be returned match all the criteria passed in the parameters."},
			{Name: "get_all_notes", Signature: "get_all_notes(id=None, paperhash=None, forum=None, invitation=None, replyto=None, signature=None, transitive_members=None, signatures=None, writer=None, trash=None, number=None, content=None, mintcdate=None, details=None, select=None, sort=None, with_count=None)", Docstring: "Gets list of Note objects based on the filters provided. The Notes that will be returned match all the criteria passed in the parameters."},
			{Name: "post_note_edit", Signature: "post_note_edit(invitation, signatures, note=None, readers=None, writers=None, nonreaders=None, content=None, await_process=False)", Docstring: "Posts a note edit"},
			{Name: "get_note_edit", Signature: "get_note_edit(id, trash=None)", Docstring: "Get a single note edit by id if available"},
			{Name: "get_note_edits", Signature: "get_note_edits(note_id=None, invitation=None, with_count=None, sort=None, trash=None, limit=None)", Docstring: "Gets a list of edits for a note. The edits that will be returned match all the criteria passed in the parameters."},
			{Name: "search_notes", Signature: "search_notes(term, content='all', group='all', source='all', limit=None, offset=None)", Docstring: "Searches notes based on term, content, group and source as the criteria. Unlike get_notes, this method uses Elasticsearch to retrieve the Notes"},
			{Name: "get_notes_by_ids", Signature: "get_notes_by_ids(ids)", Docstring: "Get notes by their IDs"},
			{Name: "delete_note", Signature: "delete_note(note_id)", Docstring: "Deletes the note"},
			// Tags
			{Name: "get_tag", Signature: "get_tag(id)", Docstring: "Get a single Tag by id if available"},
			{Name: "get_tags", Signature: "get_tags(id=None, invitation=None, parent_invitations=None, forum=None, profile=None, signature=None, tag=None, limit=None, offset=None, with_count=None, mintmdate=None, stream=None)", Docstring: "Gets a list of Tag objects based on the filters provided. The Tags that will be returned match all the criteria passed in the parameters."},
			{Name: "get_all_tags", Signature: "get_all_tags(id=None, invitation=None, parent_invitations=None, forum=None, profile=None, signature=None, tag=None, limit=None, offset=None, with_count=None)", Docstring: "Gets a list of Tag objects based on the filters provided. The Tags that will be returned match all the criteria passed in the parameters."},
			{Name: "post_tag", Signature: "post_tag(tag)", Docstring: "Posts the tag."},
			{Name: "post_tags", Signature: "post_tags(tags)", Docstring: "Posts the list of Tags. Returns a list Tag objects updated with their ids."},
			{Name: "rename_tags", Signature: "rename_tags(current_id, new_id)", Docstring: "Updates a Tag"},
			{Name: "delete_tags", Signature: "delete_tags(invitation, id=None, label=None, wait_to_finish=False, soft_delete=False)", Docstring: "Deletes tags by a combination of invitation id and one or more of the optional filters."},
			// Edges
			{Name: "get_edge", Signature: "get_edge(id, trash=False)", Docstring: "Get a single Edge by id if available"},
			{Name: "get_edges", Signature: "get_edges(id=None, invitation=None, head=None, tail=None, label=None, limit=None, offset=None, with_count=None, trash=None)", Docstring: "Returns a list of Edge objects based on the filters provided."},
			{Name: "get_all_edges", Signature: "get_all_edges(id=None, invitation=None, head=None, tail=None, label=None, limit=None, offset=None, with_count=None, trash=None)", Docstring: "Returns a list of Edge objects based on the filters provided."},
			{Name: "get_edges_count", Signature: "get_edges_count(id=None, invitation=None, head=None, tail=None, label=None, domain=None)", Docstring: "Returns a list of Edge objects based on the filters provided."},
			{Name: "get_grouped_edges", Signature: "get_grouped_edges(invitation=None, head=None, tail=None, label=None, groupby='head', select=None, limit=None, offset=None, trash=None)", Docstring: "Returns a list of JSON objects where each one represents a group of edges."},
			{Name: "get_archived_edges", Signature: "get_archived_edges(invitation)", Docstring: "Returns a list of Edge objects based on the filters provided."},
			{Name: "post_edge", Signature: "post_edge(edge)", Docstring: "Posts the edge. Upon success, returns the posted Edge object."},
			{Name: "post_edges", Signature: "post_edges(edges)", Docstring: "Posts the list of Edges. Returns a list Edge objects updated with their ids."},
			{Name: "rename_edges", Signature: "rename_edges(current_id, new_id)", Docstring: "Updates an Edge"},
			{Name: "delete_edges", Signature: "delete_edges(invitation, id=None, label=None, head=None, tail=None, wait_to_finish=False, soft_delete=False)", Docstring: "Deletes edges by a combination of invitation id and one or more of the optional filters."},
			// Profiles
			{Name: "get_profile", Signature: "get_profile(email_or_id=None)", Docstring: "Get a single Profile by id, if available"},
			{Name: "get_profiles", Signature: "get_profiles(id=None, trash=None, with_blocked=None, offset=None, limit=None, sort=None)", Docstring: "Get a list of Profiles"},
			{Name: "search_profiles", Signature: "search_profiles(confirmedEmails=None, emails=None, ids=None, term=None, first=None, middle=None, last=None, fullname=None, relation=None, use_ES=False)", Docstring: "Gets a list of profiles using either their ids or corresponding emails"},
			{Name: "post_profile", Signature: "post_profile(profile)", Docstring: "Updates a Profile"},
			{Name: "rename_profile", Signature: "rename_profile(current_id, new_id)", Docstring: "Updates a the profile id of a Profile"},
			{Name: "merge_profiles", Signature: "merge_profiles(profileTo, profileFrom)", Docstring: "Merges two Profiles"},
			{Name: "moderate_profile", Signature: "moderate_profile(profile_id, decision)", Docstring: "Updates a Profile"},
			{Name: "delete_profile_reference", Signature: "delete_profile_reference(reference_id)", Docstring: "Deletes the Profile Reference specified by reference_id."},
			{Name: "update_relation_readers", Signature: "update_relation_readers(update)", Docstring: "Updates the relation readers available in the profile. This is an admin method."},
			// Messages
			{Name: "post_message", Signature: "post_message(subject, recipients, message, invitation=None, signature=None, ignoreRecipients=None, sender=None, replyTo=None, parentGroup=None, use_job=None)", Docstring: "Posts a message to the recipients and consequently sends them emails"},
			{Name: "post_message_request", Signature: "post_message_request(subject, recipients, message, invitation=None, signature=None, ignoreRecipients=None, sender=None, replyTo=None, parentGroup=None, use_job=None)", Docstring: "Posts a message to the recipients and consequently sends them emails"},
			{Name: "get_message_requests", Signature: "get_message_requests(id=None, invitation=None)", Docstring: "Gets message requests"},
			{Name: "post_direct_message", Signature: "post_direct_message(subject, recipients, message, sender=None)", Docstring: "Posts a message to the recipients and consequently sends them emails"},
			{Name: "get_messages", Signature: "get_messages(to=None, subject=None, status=None, offset=None, limit=None)", Docstring: "**Only for Super User**. Retrieves all the messages sent to a list of usernames or emails and/or a particular e-mail subject"},
			// Files
			{Name: "get_pdf", Signature: "get_pdf(id, is_reference=False)", Docstring: "Gets the binary content of a pdf using the provided note/reference id"},
			{Name: "get_attachment", Signature: "get_attachment(field_name, id=None, ids=None, group_id=None, invitation_id=None)", Docstring: "Gets the binary content of a attachment using the provided note id"},
			{Name: "put_attachment", Signature: "put_attachment(file_path, invitation, name)", Docstring: "Uploads a file to the openreview server"},
			// Venues
			{Name: "get_venues", Signature: "get_venues(id=None, ids=None, invitations=None)", Docstring: "Gets list of Note objects based on the filters provided. The Notes that will be returned match all the criteria passed in the parameters."},
			{Name: "post_venue", Signature: "post_venue(venue)", Docstring: "Posts the venue. Upon success, returns the posted Venue object."},
			{Name: "rename_venue", Signature: "rename_venue(old_venue_id, new_venue_id, request_form=None, additional_renames=None)", Docstring: "Updates the domain for an entire venue"},
			{Name: "rename_domain", Signature: "rename_domain(old_domain, new_domain, request_form, additional_renames=None)", Docstring: "Updates the domain for an entire venue"},
			// Institutions
			{Name: "get_institutions", Signature: "get_institutions(id=None, domain=None)", Docstring: "Get a single Institution by id or domain if available"},
			{Name: "post_institution", Signature: "post_institution(institution)", Docstring: "Requires Super User permission. Adds an institution if the institution id is not found in the database, otherwise, the institution is updated."},
			{Name: "delete_institution", Signature: "delete_institution(institution_id)", Docstring: "Deletes the institution"},
			// Utilities
			{Name: "get_tildeusername", Signature: "get_tildeusername(fullname)", Docstring: "Gets next possible tilde user name corresponding to the specified full name"},
			{Name: "get_process_logs", Signature: "get_process_logs(id=None, invitation=None, status=None, min_sdate=None)", Docstring: "**Only for Super User**. Retrieves the logs of the process function executed by an Invitation"},
			{Name: "get_jobs_status", Signature: "get_jobs_status()", Docstring: "**Only for Super User**. Retrieves the jobs status of the queue"},
			{Name: "post_edit", Signature: "post_edit(edit)", Docstring: "Posts an edit"},
			// Expertise
			{Name: "request_expertise", Signature: "request_expertise(name, group_id, venue_id, submission_content=None, alternate_match_group=None, expertise_selection_id=None, model=None, baseurl=None, weight=None, top_recent_pubs=None)", Docstring: "Request expertise computation"},
			{Name: "request_single_paper_expertise", Signature: "request_single_paper_expertise(name, group_id, paper_id, expertise_selection_id=None, model=None, baseurl=None)", Docstring: "Request expertise computation for a single paper"},
			{Name: "request_paper_similarity", Signature: "request_paper_similarity(name, venue_id=None, alternate_venue_id=None, invitation=None, alternate_invitation=None, model='specter2+scincl', baseurl=None)", Docstring: "Call to the Expertise API to compute paper-to-paper similarity scores. This can be between 2 different venues or between submissions of the same venue."},
			{Name: "request_paper_subset_expertise", Signature: "request_paper_subset_expertise(name, submissions, group_id, expertise_selection_id=None, model='specter2+scincl', weight=None, baseurl=None)", Docstring: "Call to the Expertise API to compute scores for a subset of papers to a group."},
			{Name: "request_user_subset_expertise", Signature: "request_user_subset_expertise(name, members, expertise_selection_id=None, venue_id=None, invitation=None, model='specter2+scincl', weight=None, baseurl=None)", Docstring: "Call to the Expertise API to compute scores for a subset of users to papers."},
			{Name: "get_expertise_status", Signature: "get_expertise_status(job_id=None, group_id=None, paper_id=None, baseurl=None)", Docstring: "Get expertise computation status"},
			{Name: "get_expertise_jobs", Signature: "get_expertise_jobs(status=None, baseurl=None)", Docstring: "Get expertise jobs"},
			{Name: "get_expertise_results", Signature: "get_expertise_results(job_id, baseurl=None, wait_for_complete=False)", Docstring: "Get expertise computation results"},
		},
	}
}
