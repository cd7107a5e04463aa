package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner implementación de repository.TxRunner sobre pgxpool. Cada Run abre
// una transacción, liga repositorios frescos a ella y confirma solo si fn
// devuelve nil; el rollback diferido es un no-op tras el commit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner de transacciones.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunItemCategoryTx ejecuta fn con los repositorios del agregado item_category
// ligados a una misma transacción.
func (r *TxRunner) RunItemCategoryTx(ctx context.Context, fn func(tx repository.ItemCategoryTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(repository.ItemCategoryTx{
		ItemCategories: NewItemCategoryRepository(tx),
		Details:        NewItemCategoryDetailRepository(tx),
		Dokumen:        NewDokumenRepository(tx),
		Units:          NewUnitRepository(tx),
	})
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RunDokumenTx ejecuta fn con los repositorios del duplicador de dokumen
// ligados a una misma transacción.
func (r *TxRunner) RunDokumenTx(ctx context.Context, fn func(tx repository.DokumenTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(repository.DokumenTx{
		Dokumen:        NewDokumenRepository(tx),
		ItemCategories: NewItemCategoryRepository(tx),
		Details:        NewItemCategoryDetailRepository(tx),
	})
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RunProductTx ejecuta fn con los repositorios del agregado product ligados a
// una misma transacción.
func (r *TxRunner) RunProductTx(ctx context.Context, fn func(tx repository.ProductTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(repository.ProductTx{
		Products: NewProductRepository(tx),
		Details:  NewProductDetailRepository(tx),
	})
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
