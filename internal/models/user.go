// Package models содержит доменные модели трекера портфеля:
// пользователей, ордера и рыночные данные (holdings и positions).
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash хранит bcrypt‑хэш пароля; исходный пароль нигде не
// сохраняется, не логируется и не возвращается клиенту.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата регистрации
}
