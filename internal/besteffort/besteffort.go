package besteffort

import "log"

// Do ejecuta un efecto secundario cuyo fallo nunca debe abortar la
// operación principal: el error solo queda en el log.
func Do(label string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("best-effort %s failed: %v", label, err)
	}
}
