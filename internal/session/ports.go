package session

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Settings . Settings
type Settings interface {
	SaveSetting(key, value string) error
	GetSetting(key string) (string, error)
	DeleteSettings(keys []string) error
}
