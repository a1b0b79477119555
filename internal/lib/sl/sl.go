// Package sl дополняет log/slog короткими помощниками для атрибутов лога.
package sl

import "log/slog"

// Err упаковывает ошибку в атрибут с ключом "error", чтобы записи об
// ошибках во всех обработчиках выглядели одинаково.
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
