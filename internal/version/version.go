package version

var (
	AppName     = "Guild Clerk"
	AppFullName = "Guild Clerk Discord Bot"
	Version     = "0.3.0"
)
