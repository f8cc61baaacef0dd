package constants

type ContextKey string

const (
	AppKey         ContextKey = "app"
	LoggerKey      ContextKey = "logger"
	ParamsKey      ContextKey = "params"
	UserKey        ContextKey = "user"
	SessionKey     ContextKey = "session"
	ShellKey       ContextKey = "shell"
	NavSectionsKey ContextKey = "nav-sections"
	NavGroupsKey   ContextKey = "nav-groups"
	LocalizerKey   ContextKey = "localizer"
	RequestStart   ContextKey = "request-start"
)
