package schema

// OldQuestion is the schema definition for content.oldquestion
var OldQuestion = newContentTable("oldquestion",
	FieldColumn{Field: "title", Column: "title"},
	FieldColumn{Field: "question", Column: "question"},
	FieldColumn{Field: "answer", Column: "answer"},
	FieldColumn{Field: "subject", Column: "subject"},
	FieldColumn{Field: "year", Column: "year"},
	FieldColumn{Field: "examType", Column: "examtype"},
	FieldColumn{Field: "tags", Column: "tags"},
	FieldColumn{Field: "slug", Column: "slug"},
)
