package repository

import "context"

type InventoryRepository interface {
	// 在庫が足りるときだけ減算。足りなければfalse。
	// 同時注文の競合はここの条件付きUPDATEで止める。
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
