package repository

import (
	"context"
	"fmt"

	"github.com/mmeshcher/jdcrm/internal/model"
	"github.com/mmeshcher/jdcrm/internal/validation"
)

// ProductRepository предоставляет доступ к товарам.
type ProductRepository struct {
	sess *Session
}

// NewProductRepository создаёт репозиторий товаров.
func NewProductRepository(sess *Session) *ProductRepository {
	return &ProductRepository{sess: sess}
}

// FindByProductCode возвращает товар по коду.
func (r *ProductRepository) FindByProductCode(ctx context.Context, code string) (*model.Product, error) {
	return r.sess.store.ProductByCode(ctx, code)
}

// FindByCategory возвращает товары категории, упорядоченные по названию.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.sess.store.ProductsByCategory(ctx, category)
}

// FindOnSale возвращает товары в продаже, упорядоченные по названию.
func (r *ProductRepository) FindOnSale(ctx context.Context) ([]model.Product, error) {
	return r.sess.store.ProductsByStatus(ctx, model.ProductStatusOnSale)
}

// FindByStatus возвращает товары с указанным статусом, упорядоченные по названию.
func (r *ProductRepository) FindByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	return r.sess.store.ProductsByStatus(ctx, status)
}

// History возвращает журнал изменений отслеживаемых полей товара в хронологическом порядке.
func (r *ProductRepository) History(ctx context.Context, productID int64) ([]model.ProductChange, error) {
	return r.sess.store.ProductChanges(ctx, productID)
}

// Save проверяет товар и ставит его запись в очередь.
// При обновлении изменения отслеживаемых полей записываются в журнал в той же транзакции.
func (r *ProductRepository) Save(ctx context.Context, p *model.Product, flush bool) error {
	if err := validation.Product(p); err != nil {
		return err
	}
	r.sess.stamp(ctx, p)

	return r.sess.enqueue(ctx, write{
		desc:  "save product " + p.ProductCode,
		check: func() error { return validation.Product(p) },
		apply: func(ctx context.Context, st Store) (func(), error) {
			return upsert(&p.ID,
				func() error { return st.InsertProduct(ctx, p) },
				func() error { return updateTrackedProduct(ctx, st, p) },
			)
		},
	}, flush)
}

func updateTrackedProduct(ctx context.Context, st Store, p *model.Product) error {
	prev, err := st.ProductByID(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("load previous product: %w", err)
	}

	if err := st.UpdateProduct(ctx, p); err != nil {
		return err
	}

	changes := model.DiffProduct(prev, p)
	if len(changes) == 0 {
		return nil
	}
	return st.InsertProductChanges(ctx, changes)
}

// Remove ставит удаление товара в очередь; журнал изменений удаляется вместе с ним.
func (r *ProductRepository) Remove(ctx context.Context, p *model.Product, flush bool) error {
	return r.sess.enqueue(ctx, write{
		desc:  "remove product " + p.ProductCode,
		apply: func(ctx context.Context, st Store) (func(), error) {
			return remove(&p.ID, func() error { return st.DeleteProduct(ctx, p.ID) })
		},
	}, flush)
}
