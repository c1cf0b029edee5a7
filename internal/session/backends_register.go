package session

func init() {
	RegisterBackend(BackendChrome, NewChromeSession)
}
