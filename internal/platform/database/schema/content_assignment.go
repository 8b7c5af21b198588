package schema

// Assignment is the schema definition for content.assignment
var Assignment = newContentTable("assignment",
	FieldColumn{Field: "title", Column: "title"},
	FieldColumn{Field: "description", Column: "description"},
	FieldColumn{Field: "dueDate", Column: "duedate"},
	FieldColumn{Field: "subject", Column: "subject"},
	FieldColumn{Field: "priority", Column: "priority"},
)
