package cli

import (
	"context"
	"errors"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/domain"
)

func (a *App) createUser(ctx context.Context) error {
	login, err := a.in.Line("Enter login (username): ")
	if err != nil {
		return err
	}
	password, err := a.in.Line("Enter password: ")
	if err != nil {
		return err
	}
	phone, err := a.in.Line("Enter phone number: ")
	if err != nil {
		return err
	}
	err = a.deps.Auth.Register(ctx, auth.RegisterRequest{Login: login, Password: password, PhoneNum: phone})
	if errors.Is(err, domain.ErrInvalidInput) {
		a.println("Login and password are required.")
		return nil
	}
	if err != nil {
		return err
	}
	a.println("User registered successfully!")
	return nil
}

// logIn devuelve la sesión resultante; con una sesión activa no pide credenciales.
func (a *App) logIn(ctx context.Context, current auth.Session) (auth.Session, error) {
	if current.Active() {
		a.printf("Already logged in as %s\n", current.Login)
		return current, nil
	}
	login, err := a.in.Line("Enter login: ")
	if err != nil {
		return current, err
	}
	password, err := a.in.Line("Enter password: ")
	if err != nil {
		return current, err
	}
	s, err := a.deps.Auth.Login(ctx, current, auth.LoginRequest{Login: login, Password: password})
	if errors.Is(err, domain.ErrAlreadyLoggedIn) {
		a.printf("Already logged in as %s\n", current.Login)
		return current, nil
	}
	if err != nil {
		return current, err
	}
	a.println("Login successful!")
	a.printf("Welcome, %s!\n", s.Login)
	return s, nil
}

func (a *App) viewProfile(ctx context.Context, s auth.Session) error {
	u, err := a.deps.Profile.View(ctx, s.Login)
	if err != nil {
		return err
	}
	a.println("Your Profile Information:")
	a.printf("Login: %s\n", u.Login)
	a.printf("Favorite Items: %s\n", orNone(u.FavoriteItems))
	a.printf("Phone Number: %s\n", orNone(u.PhoneNum))
	a.printf("Role: %s\n", u.Role)
	return nil
}

func (a *App) updateProfile(ctx context.Context, s auth.Session) error {
	for {
		a.println("UPDATE PROFILE OPTIONS:")
		a.println("1. Change Favorite Item")
		a.println("2. Change Phone Number")
		a.println("3. Change Password")
		a.println("4. Go Back")

		choice, err := a.in.Choice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			v, err := a.in.Text("Enter new favorite item: ")
			if err != nil {
				return err
			}
			a.outcome(a.deps.Profile.ChangeFavorite(ctx, s.Login, v), "Favorite item updated successfully!")
		case 2:
			v, err := a.in.Text("Enter new phone number: ")
			if err != nil {
				return err
			}
			a.outcome(a.deps.Profile.ChangePhone(ctx, s.Login, v), "Phone number updated successfully!")
		case 3:
			v, err := a.in.Line("Enter new password: ")
			if err != nil {
				return err
			}
			a.outcome(a.deps.Profile.ChangePassword(ctx, s.Login, v), "Password updated successfully!")
		case 4:
			return nil
		default:
			a.println("Invalid choice. Try again.")
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "null"
	}
	return s
}
