package catalog

// entityClasses catalogs the API 2 data entities from openreview.api.
func entityClasses() []Class {
	return []Class{
		{
			Name: "Invitation",
			Docstring: `Represents an invitation in OpenReview.

    :param id: Invitation id
    :type id: str, optional
    :param invitations: Invitation ids that apply to this Invitation
    :type invitations: list[str], optional
    :param parent_invitations: Parent invitation ids
    :type parent_invitations: list[str], optional
    :param domain: Domain for the Invitation
    :type domain: str, optional
    :param readers: List of readers in the Invitation, each reader is a Group id
    :type readers: list[str], optional
    :param writers: List of writers in the Invitation, each writer is a Group id
    :type writers: list[str], optional
    :param invitees: List of invitees in the Invitation, each invitee is a Group id
    :type invitees: list[str], optional
    :param signatures: List of signatures in the Invitation, each signature is a Group id
    :type signatures: list[str], optional
    :param edit: Edit template configuration
    :type edit: dict, optional
    :param edge: Edge template configuration (type='Edge')
    :type edge: dict, optional
    :param tag: Tag template configuration (type='Tag')
    :type tag: dict, optional
    :param message: Message template configuration (type='Message')
    :type message: dict, optional
    :param type: Type of invitation (Note, Edge, Tag, or Message)
    :type type: str, default='Note'
    :param noninvitees: List of noninvitees in the Invitation, each noninvitee is a Group id
    :type noninvitees: list[str], optional
    :param nonreaders: List of nonreaders in the Invitation, each nonreader is a Group id
    :type nonreaders: list[str], optional
    :param web: Web interface configuration
    :type web: str, optional
    :param process: Process function
    :type process: str, optional
    :param preprocess: Preprocess function
    :type preprocess: str, optional
    :param date_processes: Date-based process functions
    :type date_processes: list, optional
    :param post_processes: Post-process functions
    :type post_processes: list, optional
    :param duedate: Due date timestamp
    :type duedate: int, optional
    :param expdate: Expiration date timestamp
    :type expdate: int, optional
    :param cdate: Creation date timestamp
    :type cdate: int, optional
    :param ddate: Deletion date timestamp
    :type ddate: int, optional
    :param tcdate: True creation date timestamp
    :type tcdate: int, optional
    :param tmdate: True modification date timestamp
    :type tmdate: int, optional
    :param minReplies: Minimum number of replies
    :type minReplies: int, optional
    :param maxReplies: Maximum number of replies
    :type maxReplies: int, optional
    :param bulk: Bulk operation flag
    :type bulk: bool, optional
    :param content: Content schema/configuration
    :type content: dict, optional
    :param reply_forum_views: Reply forum views configuration
    :type reply_forum_views: list, default=[]
    :param responseArchiveDate: Response archive date timestamp
    :type responseArchiveDate: int, optional
    :param details: Additional details
    :type details: dict, optional
    :param description: Description text
    :type description: str, optional
    :param instructions: Instructions text
    :type instructions: str, optional`,
			Module: "openreview.api",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(id=None, invitations=None, parent_invitations=None, domain=None, readers=None, writers=None, invitees=None, signatures=None, edit=None, edge=None, tag=None, message=None, type='Note', noninvitees=None, nonreaders=None, web=None, process=None, preprocess=None, date_processes=None, post_processes=None, duedate=None, expdate=None, cdate=None, ddate=None, tcdate=None, tmdate=None, minReplies=None, maxReplies=None, bulk=None, content=None, reply_forum_views=[], responseArchiveDate=None, details=None, description=None, instructions=None)", Docstring: "Initialize an Invitation object"},
				{Name: "to_json", Signature: "to_json()", Docstring: "Converts Invitation instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."},
				{Name: "from_json", Signature: "from_json(i)", Docstring: "Creates an Invitation object from a dictionary that contains keys values equivalent to the name of the instance variables of the Invitation class"},
				{Name: "is_active", Signature: "is_active()", Docstring: "Check if the invitation is currently active (based on cdate, expdate, and current time)"},
				{Name: "get_content_value", Signature: "get_content_value(field_name, default_value=None)", Docstring: "Get a content field value by name, with optional default value"},
				{Name: "pretty_id", Signature: "pretty_id()", Docstring: "Returns a formatted version of the invitation ID"},
			},
		},
		{
			Name: "Note",
			Docstring: `Represents a note in OpenReview.

    :param invitations: Invitation ids that apply to this Note
    :type invitations: list[str], optional
    :param parent_invitations: Parent invitation ids
    :type parent_invitations: list[str], optional
    :param readers: List of readers in the Note, each reader is a Group id
    :type readers: list[str], optional
    :param writers: List of writers in the Note, each writer is a Group id
    :type writers: list[str], optional
    :param signatures: List of signatures in the Note, each signature is a Group id
    :type signatures: list[str], optional
    :param content: Content of the Note
    :type content: dict, optional
    :param id: Note id
    :type id: str, optional
    :param number: Note number
    :type number: int, optional
    :param cdate: Creation date
    :type cdate: int, optional
    :param pdate: Publication date
    :type pdate: int, optional
    :param odate: Original date
    :type odate: int, optional
    :param mdate: Modification date
    :type mdate: int, optional
    :param tcdate: True creation date
    :type tcdate: int, optional
    :param tmdate: True modification date
    :type tmdate: int, optional
    :param ddate: Deletion date
    :type ddate: int, optional
    :param forum: Forum id
    :type forum: str, optional
    :param replyto: Reply to note id
    :type replyto: str, optional
    :param nonreaders: List of nonreaders in the Note, each nonreader is a Group id
    :type nonreaders: list[str], optional
    :param domain: Domain for the Note
    :type domain: str, optional
    :param details: Additional details
    :type details: dict, optional
    :param license: License information
    :type license: str, optional`,
			Module: "openreview.api",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(invitations=None, parent_invitations=None, readers=None, writers=None, signatures=None, content=None, id=None, number=None, cdate=None, pdate=None, odate=None, mdate=None, tcdate=None, tmdate=None, ddate=None, forum=None, replyto=None, nonreaders=None, domain=None, details=None, license=None)", Docstring: "Initialize a Note object"},
				{Name: "to_json", Signature: "to_json()", Docstring: "Converts Note instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."},
				{Name: "from_json", Signature: "from_json(n)", Docstring: "Creates a Note object from a dictionary that contains keys values equivalent to the name of the instance variables of the Note class"},
			},
		},
		{
			Name: "Group",
			Docstring: `When a user is created, it is automatically assigned to certain groups that give him different privileges. A username is also a group, therefore, groups can be members of other groups.

    :param id: id of the Group
    :type id: str, optional
    :param content: Content of the Group
    :type content: dict, optional
    :param readers: List of readers in the Group, each reader is a Group id
    :type readers: list[str], optional
    :param writers: List of writers in the Group, each writer is a Group id
    :type writers: list[str], optional
    :param signatories: List of signatories in the Group, each signatory is a Group id
    :type signatories: list[str], optional
    :param signatures: List of signatures in the Group, each signature is a Group id
    :type signatures: list[str], optional
    :param invitation: Invitation id for this Group
    :type invitation: str, optional
    :param invitations: Invitation ids that apply to this Group
    :type invitations: list[str], optional
    :param parent_invitations: Parent invitation ids
    :type parent_invitations: list[str], optional
    :param cdate: Creation date of the Group
    :type cdate: int, optional
    :param ddate: Deletion date of the Group
    :type ddate: int, optional
    :param tcdate: True creation date of the Group
    :type tcdate: int, optional
    :param tmdate: True modification date of the Group
    :type tmdate: int, optional
    :param members: List of members in the Group, each member is a Group id
    :type members: list[str], optional
    :param nonreaders: List of nonreaders in the Group, each nonreader is a Group id
    :type nonreaders: list[str], optional
    :param impersonators: List of impersonators who can impersonate this Group
    :type impersonators: list[str], optional
    :param web: Webfield configuration for the Group
    :type web: str, optional
    :param anonids: Anonymous ids configuration
    :type anonids: bool, optional
    :param deanonymizers: List of deanonymizers who can reveal anonymous identities
    :type deanonymizers: list[str], optional
    :param host: Host URL for the Group
    :type host: str, optional
    :param domain: Domain for the Group
    :type domain: str, optional
    :param parent: Parent group id
    :type parent: str, optional
    :param details: Additional details
    :type details: dict, optional
    :param description: Description text
    :type description: str, optional`,
			Module: "openreview.api",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(id=None, content=None, readers=None, writers=None, signatories=None, signatures=None, invitation=None, invitations=None, parent_invitations=None, cdate=None, ddate=None, tcdate=None, tmdate=None, members=None, nonreaders=None, impersonators=None, web=None, anonids=None, deanonymizers=None, host=None, domain=None, parent=None, details=None, description=None)", Docstring: "Initialize a Group object"},
				{Name: "get_content_value", Signature: "get_content_value(field_name, default_value=None)", Docstring: "Get a content field value by name, with optional default value"},
				{Name: "to_json", Signature: "to_json()", Docstring: "Converts Group instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."},
				{Name: "from_json", Signature: "from_json(g)", Docstring: "Creates a Group object from a dictionary that contains keys values equivalent to the name of the instance variables of the Group class"},
				{Name: "add_member", Signature: "add_member(member)", Docstring: "Adds a member to the group. This is done only on the object not in OpenReview. Another method like post() is needed for the change to show in OpenReview"},
				{Name: "remove_member", Signature: "remove_member(member)", Docstring: "Removes a member from the group. This is done only on the object not in OpenReview. Another method like post() is needed for the change to show in OpenReview"},
				{Name: "add_webfield", Signature: "add_webfield(web)", Docstring: "Adds a webfield to the group by reading from a file path"},
				{Name: "post", Signature: "post(client)", Docstring: "Posts the group to OpenReview using the provided client"},
				{Name: "transform_to_anon_ids", Signature: "transform_to_anon_ids(elements)", Docstring: "Transforms member ids to anonymous ids if anonids is enabled"},
			},
		},
		{
			Name: "Edge",
			Docstring: `Represents an edge between entities in OpenReview.

    An Edge represents a directed relationship between two entities (head and tail).
    Commonly used for assignments, conflicts, recommendations, and other relationships.

    :param head: Head of the edge (source entity id)
    :type head: str, required
    :param tail: Tail of the edge (target entity id)
    :type tail: str, required
    :param invitation: Invitation id for this edge
    :type invitation: str, required
    :param domain: Domain for the Edge
    :type domain: str, optional
    :param readers: List of readers, each reader is a Group id
    :type readers: list[str], optional
    :param writers: List of writers, each writer is a Group id
    :type writers: list[str], optional
    :param signatures: List of signatures, each signature is a Group id
    :type signatures: list[str], optional
    :param id: Edge id
    :type id: str, optional
    :param weight: Weight value for the edge (e.g., score, confidence)
    :type weight: float, optional
    :param label: Label for the edge
    :type label: str, optional
    :param cdate: Creation date timestamp
    :type cdate: int, optional
    :param ddate: Deletion date timestamp
    :type ddate: int, optional
    :param nonreaders: List of nonreaders, each nonreader is a Group id
    :type nonreaders: list[str], optional
    :param tcdate: True creation date timestamp
    :type tcdate: int, optional
    :param tmdate: True modification date timestamp
    :type tmdate: int, optional
    :param tddate: True deletion date timestamp
    :type tddate: int, optional
    :param tauthor: True author
    :type tauthor: str, optional`,
			Module: "openreview.api",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(head, tail, invitation, domain=None, readers=None, writers=None, signatures=None, id=None, weight=None, label=None, cdate=None, ddate=None, nonreaders=None, tcdate=None, tmdate=None, tddate=None, tauthor=None)", Docstring: "Initialize an Edge object with required head, tail, and invitation parameters"},
				{Name: "to_json", Signature: "to_json()", Docstring: "Converts Edge instance to a dictionary containing the edge parameters"},
				{Name: "from_json", Signature: "from_json(e)", Docstring: "Creates an Edge object from a dictionary that contains keys values equivalent to the name of the instance variables of the Edge class"},
			},
		},
		{
			Name: "Tag",
			Docstring: `Represents a tag in OpenReview.

    Tags are used to annotate notes with metadata like decisions, ratings, or custom labels.

    :param invitation: Invitation id (required)
    :type invitation: str, required
    :param signature: Signature, typically a Group id
    :type signature: str, optional
    :param tag: Content of the tag
    :type tag: str, optional
    :param readers: List of readers, each reader is a Group id
    :type readers: list[str], optional
    :param writers: List of writers, each writer is a Group id
    :type writers: list[str], optional
    :param id: Tag id
    :type id: str, optional
    :param parent_invitations: Parent invitation ids
    :type parent_invitations: list[str], optional
    :param cdate: Creation date timestamp
    :type cdate: int, optional
    :param tcdate: True creation date timestamp
    :type tcdate: int, optional
    :param tmdate: True modification date timestamp
    :type tmdate: int, optional
    :param ddate: Deletion date timestamp
    :type ddate: int, optional
    :param forum: Forum id (typically the note being tagged)
    :type forum: str, optional
    :param nonreaders: List of nonreaders, each nonreader is a Group id
    :type nonreaders: list[str], optional
    :param profile: Profile id
    :type profile: str, optional
    :param weight: Weight value for the tag
    :type weight: float, optional
    :param label: Label for the tag
    :type label: str, optional
    :param note: Note id being tagged
    :type note: str, optional`,
			Module: "openreview.api",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(invitation, signature=None, tag=None, readers=None, writers=None, id=None, parent_invitations=None, cdate=None, tcdate=None, tmdate=None, ddate=None, forum=None, nonreaders=None, profile=None, weight=None, label=None, note=None)", Docstring: "Initialize a Tag object with required invitation parameter"},
				{Name: "to_json", Signature: "to_json()", Docstring: "Converts Tag instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."},
				{Name: "from_json", Signature: "from_json(t)", Docstring: "Creates a Tag object from a dictionary that contains keys values equivalent to the name of the instance variables of the Tag class"},
			},
		},
		{
			Name: "Edit",
			Docstring: `
    :param id: Edit id
    :type id: str, optional
    :param domain: Domain for the Edit
    :type domain: str, optional
    :param invitations: Invitation ids that apply to this Edit
    :type invitations: list[str], optional
    :param readers: List of readers in the Edit, each reader is a Group id
    :type readers: list[str], optional
    :param writers: List of writers in the Edit, each writer is a Group id
    :type writers: list[str], optional
    :param signatures: List of signatures in the Edit, each signature is a Group id
    :type signatures: list[str], optional
    :param content: Content of the Edit
    :type content: dict, optional
    :param note: Template of the Note that will be created
    :type note: Note, optional
    :param group: Template of the Group that will be created
    :type group: Group, optional
    :param invitation: Template of the Invitation that will be created (can be Invitation object or string)
    :type invitation: Invitation or str, optional
    :param nonreaders: List of nonreaders in the Edit, each nonreader is a Group id
    :type nonreaders: list[str], optional
    :param cdate: Creation date
    :type cdate: int, optional
    :param tcdate: True creation date
    :type tcdate: int, optional
    :param tmdate: True modification date
    :type tmdate: int, optional
    :param ddate: Deletion date
    :type ddate: int, optional
    :param tauthor: True author
    :type tauthor: str, optional`,
			Module: "openreview.api",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(id=None, domain=None, invitations=None, readers=None, writers=None, signatures=None, content=None, note=None, group=None, invitation=None, nonreaders=None, cdate=None, tcdate=None, tmdate=None, ddate=None, tauthor=None)", Docstring: "Initialize an Edit object"},
				{Name: "to_json", Signature: "to_json()", Docstring: "Converts Edit instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."},
				{Name: "from_json", Signature: "from_json(e)", Docstring: "Creates an Edit object from a dictionary that contains keys values equivalent to the name of the instance variables of the Edit class"},
			},
		},
		{
			Name: "Profile",
			Docstring: `Represents a user profile in OpenReview.

    :param id: Profile id (typically in format ~FirstName_LastName1)
    :type id: str, optional
    :param active: If true, the Profile is active in OpenReview
    :type active: bool, optional
    :param password: If true, the Profile has a password set
    :type password: bool, optional
    :param number: Profile number
    :type number: int, optional
    :param tcdate: True creation date timestamp
    :type tcdate: int, optional
    :param tmdate: True modification date timestamp
    :type tmdate: int, optional
    :param referent: If this is a reference profile, it contains the Profile id that it points to
    :type referent: str, optional
    :param packaging: Contains previous versions of this Profile
    :type packaging: dict, optional
    :param invitation: Invitation id (defaults to ~/-/profiles)
    :type invitation: str, optional
    :param readers: List of readers, each reader is a Group id
    :type readers: list[str], optional
    :param nonreaders: List of nonreaders, each nonreader is a Group id
    :type nonreaders: list[str], optional
    :param signatures: List of signatures, each signature is a Group id
    :type signatures: list[str], optional
    :param writers: List of writers, each writer is a Group id
    :type writers: list[str], optional
    :param content: Dictionary containing the profile information (names, emails, history, relations, expertise, etc.)
    :type content: dict, optional
    :param metaContent: Contains information about entities that have modified the Profile
    :type metaContent: dict, optional
    :param tauthor: True author
    :type tauthor: str, optional
    :param state: Profile state
    :type state: str, optional`,
			Module: "openreview.api",
			Methods: []Method{
				{Name: "__init__", Signature: "__init__(id=None, active=None, password=None, number=None, tcdate=None, tmdate=None, referent=None, packaging=None, invitation=None, readers=None, nonreaders=None, signatures=None, writers=None, content=None, metaContent=None, tauthor=None, state=None)", Docstring: "Initialize a Profile object"},
				{Name: "get_preferred_name", Signature: "get_preferred_name(pretty=False)", Docstring: "Get the preferred username from profile names, optionally formatted as pretty name"},
				{Name: "get_preferred_email", Signature: "get_preferred_email()", Docstring: "Get the preferred email address from profile, checking preferredEmail, emailsConfirmed, then emails"},
				{Name: "to_json", Signature: "to_json()", Docstring: "Converts Profile instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."},
				{Name: "from_json", Signature: "from_json(n)", Docstring: "Creates a Profile object from a dictionary that contains keys values equivalent to the name of the instance variables of the Profile class"},
			},
		},
	}
}
