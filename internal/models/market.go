package models

import "github.com/shopspring/decimal"

// Holding представляет строку портфеля пользователя на витрине.
// Данные только для чтения, API их не изменяет.
type Holding struct {
	Name  string          `json:"name"`  // Название инструмента
	Qty   int             `json:"qty"`   // Количество бумаг
	Avg   decimal.Decimal `json:"avg"`   // Средняя цена покупки
	Price decimal.Decimal `json:"price"` // Текущая цена
	Net   string          `json:"net"`   // Изменение с момента покупки
	Day   string          `json:"day"`   // Изменение за день
}

// Position представляет открытую позицию на витрине.
type Position struct {
	Product string          `json:"product"` // Тип продукта, например CNC
	Name    string          `json:"name"`
	Qty     int             `json:"qty"`
	Avg     decimal.Decimal `json:"avg"`
	Price   decimal.Decimal `json:"price"`
	Net     string          `json:"net"`
	Day     string          `json:"day"`
	IsLoss  bool            `json:"isLoss"` // Позиция в минусе
}
