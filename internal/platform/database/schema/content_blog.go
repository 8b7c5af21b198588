package schema

// Blog is the schema definition for content.blog
var Blog = newContentTable("blog",
	FieldColumn{Field: "title", Column: "title"},
	FieldColumn{Field: "content", Column: "content"},
	FieldColumn{Field: "author", Column: "author"},
	FieldColumn{Field: "coverImage", Column: "coverimage"},
	FieldColumn{Field: "tags", Column: "tags"},
	FieldColumn{Field: "isPublished", Column: "ispublished"},
	FieldColumn{Field: "slug", Column: "slug"},
	FieldColumn{Field: "metaDescription", Column: "metadescription"},
)
