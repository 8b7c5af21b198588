package schema

// Note is the schema definition for content.note
var Note = newContentTable("note",
	FieldColumn{Field: "title", Column: "title"},
	FieldColumn{Field: "content", Column: "content"},
	FieldColumn{Field: "subject", Column: "subject"},
	FieldColumn{Field: "tags", Column: "tags"},
	FieldColumn{Field: "isPublished", Column: "ispublished"},
	FieldColumn{Field: "slug", Column: "slug"},
	FieldColumn{Field: "metaTitle", Column: "metatitle"},
	FieldColumn{Field: "metaDescription", Column: "metadescription"},
)
