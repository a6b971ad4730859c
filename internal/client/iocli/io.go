package iocli

// IO абстрагирует терминальный ввод-вывод, чтобы команды можно было
// тестировать без настоящего stdin/stdout.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
