package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mmeshcher/jdcrm/internal/model"
)

const productColumns = `id, product_code, name, COALESCE(category, ''), COALESCE(description, ''), price,
	COALESCE(unit, ''), status, COALESCE(jd_product_id, ''), create_time, update_time,
	COALESCE(created_by, ''), COALESCE(updated_by, '')`

func scanProduct(row scanner) (model.Product, error) {
	var (
		p      model.Product
		status string
	)
	err := row.Scan(&p.ID, &p.ProductCode, &p.Name, &p.Category, &p.Description, &p.Price,
		&p.Unit, &status, &p.JdProductID, &p.CreateTime, &p.UpdateTime, &p.CreatedBy, &p.UpdatedBy)
	if err != nil {
		return p, err
	}
	p.Status, err = model.ParseProductStatus(status)
	return p, err
}

// InsertProduct сохраняет новый товар.
func (s *PostgresStore) InsertProduct(ctx context.Context, p *model.Product) error {
	return s.insert(ctx, "insert product",
		`INSERT INTO jingdong_crm_product
			(product_code, name, category, description, price, unit, status, jd_product_id,
			 create_time, update_time, created_by, updated_by)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), $7, NULLIF($8, ''),
			 $9, $10, NULLIF($11, ''), NULLIF($12, ''))
		 RETURNING id`,
		&p.ID,
		p.ProductCode, p.Name, p.Category, p.Description, p.Price, p.Unit, string(p.Status),
		p.JdProductID, p.CreateTime, p.UpdateTime, p.CreatedBy, p.UpdatedBy,
	)
}

// UpdateProduct обновляет товар.
func (s *PostgresStore) UpdateProduct(ctx context.Context, p *model.Product) error {
	return s.exec(ctx, "update product",
		`UPDATE jingdong_crm_product
		 SET product_code = $2, name = $3, category = NULLIF($4, ''), description = NULLIF($5, ''),
			 price = $6, unit = NULLIF($7, ''), status = $8, jd_product_id = NULLIF($9, ''),
			 create_time = $10, update_time = $11, created_by = NULLIF($12, ''), updated_by = NULLIF($13, '')
		 WHERE id = $1`,
		p.ID, p.ProductCode, p.Name, p.Category, p.Description, p.Price, p.Unit, string(p.Status),
		p.JdProductID, p.CreateTime, p.UpdateTime, p.CreatedBy, p.UpdatedBy,
	)
}

// DeleteProduct удаляет товар; журнал изменений удаляется каскадно.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id int64) error {
	return s.exec(ctx, "delete product", `DELETE FROM jingdong_crm_product WHERE id = $1`, id)
}

// ProductByID возвращает товар по идентификатору.
func (s *PostgresStore) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	return queryOne(ctx, s.q, "get product", scanProduct,
		`SELECT `+productColumns+` FROM jingdong_crm_product WHERE id = $1`, id)
}

// ProductByCode возвращает товар по коду.
func (s *PostgresStore) ProductByCode(ctx context.Context, code string) (*model.Product, error) {
	return queryOne(ctx, s.q, "get product", scanProduct,
		`SELECT `+productColumns+` FROM jingdong_crm_product WHERE product_code = $1`, code)
}

// ProductsByCategory возвращает товары категории.
func (s *PostgresStore) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return queryList(ctx, s.q, "select products", scanProduct,
		`SELECT `+productColumns+` FROM jingdong_crm_product WHERE category = $1 ORDER BY name, id`,
		category)
}

// ProductsByStatus возвращает товары с указанным статусом.
func (s *PostgresStore) ProductsByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	return queryList(ctx, s.q, "select products", scanProduct,
		`SELECT `+productColumns+` FROM jingdong_crm_product WHERE status = $1 ORDER BY name, id`,
		string(status))
}

// InsertProductChanges записывает изменения товара одним пакетом.
func (s *PostgresStore) InsertProductChanges(ctx context.Context, changes []model.ProductChange) error {
	batch := &pgx.Batch{}
	for _, ch := range changes {
		batch.Queue(
			`INSERT INTO jingdong_crm_product_change
				(product_id, field, old_value, new_value, changed_by, changed_at)
			 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
			 RETURNING id`,
			ch.ProductID, ch.Field, ch.OldValue, ch.NewValue, ch.ChangedBy, ch.ChangedAt,
		)
	}

	br := s.sendBatch(ctx, batch)
	defer br.Close()

	for i := range changes {
		if err := br.QueryRow().Scan(&changes[i].ID); err != nil {
			return classify(fmt.Sprintf("insert product change %s", changes[i].Field), err)
		}
	}
	return nil
}

func (s *PostgresStore) sendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	if tx, ok := s.q.(pgx.Tx); ok {
		return tx.SendBatch(ctx, b)
	}
	return s.pool.SendBatch(ctx, b)
}

const productChangeColumns = `id, product_id, field, old_value, new_value, COALESCE(changed_by, ''), changed_at`

func scanProductChange(row scanner) (model.ProductChange, error) {
	var ch model.ProductChange
	err := row.Scan(&ch.ID, &ch.ProductID, &ch.Field, &ch.OldValue, &ch.NewValue, &ch.ChangedBy, &ch.ChangedAt)
	return ch, err
}

// ProductChanges возвращает журнал изменений товара.
func (s *PostgresStore) ProductChanges(ctx context.Context, productID int64) ([]model.ProductChange, error) {
	return queryList(ctx, s.q, "select product changes", scanProductChange,
		`SELECT `+productChangeColumns+` FROM jingdong_crm_product_change
		 WHERE product_id = $1
		 ORDER BY changed_at, id`,
		productID)
}
