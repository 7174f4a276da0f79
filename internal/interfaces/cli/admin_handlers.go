package cli

import (
	"context"
	"strings"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/application/usecase"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

func (a *App) updateMenu(ctx context.Context, s auth.Session) error {
	uc := a.deps.MenuAdmin
	if err := uc.Authorize(ctx, s.Login); err != nil {
		return err
	}
	name, err := a.in.Text("Enter the name of the food item to update (or type new product name to add a new item): ")
	if err != nil {
		return err
	}
	item, err := uc.Find(ctx, s.Login, name)
	if err != nil {
		return err
	}
	if item == nil {
		a.println("Item not found. Would you like to add this item? (yes/no)")
		answer, err := a.in.Text("")
		if err != nil {
			return err
		}
		if strings.ToLower(answer) != "yes" {
			a.println("Update canceled.")
			return nil
		}
		return a.addNewItem(ctx, s, name)
	}

	for {
		a.println("UPDATE ITEM OPTIONS:")
		a.println("1. Update Price")
		a.println("2. Update Type")
		a.println("3. Update Ingredients")
		a.println("4. Update Description")
		a.println("5. Delete Item")
		a.println("6. Go Back")

		choice, err := a.in.Choice()
		if err != nil {
			return err
		}
		var (
			patch entity.ItemPatch
			done  string
		)
		switch choice {
		case 1:
			p, err := a.in.Decimal("Enter new price: ")
			if err != nil {
				return err
			}
			patch.Price, done = &p, "Price updated successfully!"
		case 2:
			t, err := a.in.Text("Enter new type (e.g., drinks, sides, entree): ")
			if err != nil {
				return err
			}
			patch.TypeOfItem, done = &t, "Type updated successfully!"
		case 3:
			v, err := a.in.Text("Enter new ingredients: ")
			if err != nil {
				return err
			}
			patch.Ingredients, done = &v, "Ingredients updated successfully!"
		case 4:
			v, err := a.in.Text("Enter new description: ")
			if err != nil {
				return err
			}
			patch.Description, done = &v, "Description updated successfully!"
		case 5:
			if err := uc.Delete(ctx, s.Login, item.ItemName); err != nil {
				return err
			}
			a.println("Item successfully deleted from the menu.")
			return nil
		case 6:
			return nil
		default:
			a.println("Invalid choice. Try again.")
			continue
		}
		updated, err := uc.Update(ctx, s.Login, item.ItemName, patch)
		if err != nil {
			a.report(err)
			continue
		}
		item = updated
		a.println(done)
	}
}

func (a *App) addNewItem(ctx context.Context, s auth.Session, name string) error {
	typ, err := a.in.Text("Enter type (e.g., drinks, sides, entree): ")
	if err != nil {
		return err
	}
	price, err := a.in.Decimal("Enter price: ")
	if err != nil {
		return err
	}
	ingredients, err := a.in.Text("Enter ingredients: ")
	if err != nil {
		return err
	}
	description, err := a.in.Text("Enter description: ")
	if err != nil {
		return err
	}
	_, err = a.deps.MenuAdmin.Create(ctx, s.Login, usecase.CreateItemRequest{
		ItemName:    name,
		TypeOfItem:  typ,
		Price:       price,
		Ingredients: ingredients,
		Description: description,
	})
	if err != nil {
		return err
	}
	a.println("New item added successfully!")
	return nil
}

func (a *App) updateUser(ctx context.Context, s auth.Session) error {
	uc := a.deps.UserAdmin
	if err := uc.Authorize(ctx, s.Login); err != nil {
		return err
	}
	target, err := a.in.Text("Enter the login of the user to update: ")
	if err != nil {
		return err
	}
	if _, err := uc.Find(ctx, s.Login, target); err != nil {
		return err
	}

	for {
		a.println("UPDATE USER OPTIONS:")
		a.println("1. Change Phone Number")
		a.println("2. Change Favorite Item")
		a.println("3. Change Password")
		a.println("4. Change Role")
		a.println("5. Go Back")

		choice, err := a.in.Choice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			v, err := a.in.Text("Enter new phone number: ")
			if err != nil {
				return err
			}
			a.outcome(uc.ChangePhone(ctx, s.Login, target, v), "Phone number updated successfully!")
		case 2:
			v, err := a.in.Text("Enter new favorite item: ")
			if err != nil {
				return err
			}
			a.outcome(uc.ChangeFavorite(ctx, s.Login, target, v), "Favorite item updated successfully!")
		case 3:
			v, err := a.in.Line("Enter new password: ")
			if err != nil {
				return err
			}
			a.outcome(uc.ChangePassword(ctx, s.Login, target, v), "Password updated successfully!")
		case 4:
			v, err := a.in.Text("Enter new role (customer/driver/manager): ")
			if err != nil {
				return err
			}
			_, err = uc.ChangeRole(ctx, s.Login, target, v)
			a.outcome(err, "User role updated successfully!")
		case 5:
			return nil
		default:
			a.println("Invalid choice. Try again.")
		}
	}
}

// outcome imprime msg si err es nil; si no, informa el error y el sub-menú sigue.
func (a *App) outcome(err error, msg string) {
	if err != nil {
		a.report(err)
		return
	}
	a.println(msg)
}
