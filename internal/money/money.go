// Package money formatea montos enteros como pesos colombianos para mostrar.
// El almacenamiento siempre usa enteros crudos; esto es solo presentación.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP formatea un monto entero como pesos colombianos sin decimales,
// con separador de miles es-CO: 15000 → "$ 15.000".
func FormatCOP(amount int64) string {
	return printer.Sprintf("$ %d", amount)
}
