package exits

import "fmt"

// FormatRegistryCode da formato al código de registro: decimal con padding a
// 4 dígitos ("0001", "0042"); pasados 9999 el string simplemente crece.
func FormatRegistryCode(code int64) string {
	return fmt.Sprintf("%04d", code)
}
