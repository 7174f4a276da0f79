package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q    Querier
	exec *Executor
}

// NewItemRepository construye el adaptador de persistencia para items del menú. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q, exec: NewExecutor(q)}
}

// Create persiste un nuevo item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO Items (itemName, ingredients, typeOfItem, price, description)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.exec.ExecuteUpdate(ctx, query,
		item.ItemName, item.Ingredients, item.TypeOfItem, item.Price, item.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByName busca sin distinguir mayúsculas y devuelve el nombre tal como está guardado.
func (r *ItemRepo) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	query := `
		SELECT itemName, TRIM(COALESCE(typeOfItem, '')), price, COALESCE(ingredients, ''), COALESCE(description, '')
		FROM Items WHERE LOWER(itemName) = LOWER($1)
		ORDER BY itemName LIMIT 1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, name).Scan(
		&it.ItemName, &it.TypeOfItem, &it.Price, &it.Ingredients, &it.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update reescribe tipo, precio, ingredientes y descripción del item originalName.
func (r *ItemRepo) Update(ctx context.Context, originalName string, item *entity.Item) error {
	query := `
		UPDATE Items SET typeOfItem = $2, price = $3, ingredients = $4, description = $5
		WHERE itemName = $1`
	n, err := r.exec.ExecuteUpdate(ctx, query,
		originalName, item.TypeOfItem, item.Price, item.Ingredients, item.Description,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// CountOrderReferences cuenta líneas de ItemsInOrder que usan el item.
func (r *ItemRepo) CountOrderReferences(ctx context.Context, name string) (int, error) {
	res, err := r.exec.ExecuteQueryAndReturnResult(ctx,
		`SELECT COUNT(*) FROM ItemsInOrder WHERE LOWER(itemName) = LOWER($1)`, name)
	if err != nil {
		return 0, fmt.Errorf("count item references: %w", err)
	}
	if len(res) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(res[0][0])
	if err != nil {
		return 0, fmt.Errorf("count item references: %w", err)
	}
	return n, nil
}

// Delete elimina el item por nombre (sin distinguir mayúsculas).
func (r *ItemRepo) Delete(ctx context.Context, name string) error {
	n, err := r.exec.ExecuteUpdate(ctx, `DELETE FROM Items WHERE LOWER(itemName) = LOWER($1)`, name)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrItemInUse
		}
		return fmt.Errorf("delete item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
