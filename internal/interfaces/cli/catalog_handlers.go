package cli

import (
	"context"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

func (a *App) viewMenu(ctx context.Context, s auth.Session) error {
	for {
		a.println("MENU BROWSING OPTIONS:")
		a.println("1. View All Items")
		a.println("2. Filter by Type")
		a.println("3. Filter by Price Range")
		a.println("4. Sort by Price (Low to High)")
		a.println("5. Sort by Price (High to Low)")
		a.println("6. Go Back")

		choice, err := a.in.Choice()
		if err != nil {
			return err
		}
		var f repository.MenuFilter
		switch choice {
		case 1:
		case 2:
			t, err := a.in.Text("Enter type (e.g., drinks, sides, entree): ")
			if err != nil {
				return err
			}
			f.Type = t
		case 3:
			lo, err := a.in.Decimal("Enter minimum price: ")
			if err != nil {
				return err
			}
			hi, err := a.in.Decimal("Enter maximum price: ")
			if err != nil {
				return err
			}
			f.MinPrice, f.MaxPrice = &lo, &hi
		case 4:
			f.Sort = repository.MenuSortPriceAsc
		case 5:
			f.Sort = repository.MenuSortPriceDesc
		case 6:
			return nil
		default:
			a.println("Invalid choice. Try again.")
			continue
		}
		n, err := a.deps.Catalog.PrintMenu(ctx, s.Login, a.out, f)
		if err != nil {
			// un rango invertido no saca al usuario del menú
			a.report(err)
			continue
		}
		if n == 0 {
			a.println("No items match.")
		}
	}
}

func (a *App) viewStores(ctx context.Context, s auth.Session) error {
	a.println("Available Stores:")
	_, err := a.deps.Catalog.PrintStores(ctx, s.Login, a.out)
	return err
}
