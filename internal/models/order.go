package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Денежные поля в API числовые, а не строковые.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Order представляет ордер, поданный пользователем.
//
// OwnerUID всегда берётся из аутентифицированного контекста запроса,
// а не из тела запроса. Записи только добавляются: ордер никогда не
// изменяется и не удаляется.
type Order struct {
	UID       string          `json:"id"`        // Уникальный идентификатор ордера
	OwnerUID  string          `json:"owner_id"`  // Идентификатор владельца (users.uid)
	Name      string          `json:"name"`      // Название инструмента
	Qty       int             `json:"qty"`       // Количество
	Price     decimal.Decimal `json:"price"`     // Цена за единицу
	Mode      string          `json:"mode"`      // Тип ордера: buy или sell
	CreatedAt time.Time       `json:"created_at"`
}

// SubmitOrder описывает данные нового ордера, принимаемые от клиента.
// Поля владельца здесь нет: его невозможно передать извне.
type SubmitOrder struct {
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
	Mode  string          `json:"mode"`
}

// OrderEvent публикуется в брокер сообщений после сохранения ордера.
type OrderEvent struct {
	OrderUID  string          `json:"order_uid"`
	OwnerUID  string          `json:"owner_uid"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Mode      string          `json:"mode"`
	CreatedAt time.Time       `json:"created_at"`
}
