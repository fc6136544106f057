package internal

const (
	COOKIE_SESSION_NAME  = "vh_session"
	COOKIE_REDIRECT_NAME = "vh_redirect"
)
