package view

const (
	NoticeCreated = "created"
	NoticeDeleted = "deleted"
)

var notices = map[string]string{
	NoticeCreated: "Event created successfully!",
	NoticeDeleted: "Event and all related registrations deleted successfully",
}

// Notice maps a redirect notice code to its message. Unknown codes map to "".
func Notice(code string) string {
	return notices[code]
}
