package repository

import "context"

// ItemCategoryTx repositorios ligados a una misma transacción para las
// mutaciones del agregado item_category. El escritor compuesto necesita
// dokumen y units para la resolución find-or-create dentro de la tx.
type ItemCategoryTx struct {
	ItemCategories ItemCategoryRepository
	Details        ItemCategoryDetailRepository
	Dokumen        DokumenRepository
	Units          UnitRepository
}

// DokumenTx repositorios ligados a una misma transacción para el duplicador
// de dokumen, que copia también sus item categories vivos y sus detalles.
type DokumenTx struct {
	Dokumen        DokumenRepository
	ItemCategories ItemCategoryRepository
	Details        ItemCategoryDetailRepository
}

// ProductTx repositorios ligados a una misma transacción para las mutaciones
// del agregado product.
type ProductTx struct {
	Products ProductRepository
	Details  ProductDetailRepository
}

// TxRunner ejecuta una función dentro de una transacción con los repositorios
// ya ligados a ella. Si fn devuelve error la transacción se revierte; si
// devuelve nil se confirma.
type TxRunner interface {
	RunItemCategoryTx(ctx context.Context, fn func(tx ItemCategoryTx) error) error
	RunDokumenTx(ctx context.Context, fn func(tx DokumenTx) error) error
	RunProductTx(ctx context.Context, fn func(tx ProductTx) error) error
}
