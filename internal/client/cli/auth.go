package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println("")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	// Инвайт-код обязателен только для закрытых инсталляций
	inviteCode, err := c.io.ReadInput("Invite code (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read invite code: %w", err)
	}

	c.io.Println("")
	c.io.Println("Registering...")

	outcome := c.session.Register(ctx, username, password, inviteCode)
	if !outcome.Success {
		return fmt.Errorf("registration failed: %s", outcome.Message)
	}

	c.io.Println("")
	c.io.Println("✓ Registration successful!")
	if outcome.Message != "" {
		c.io.Println(outcome.Message)
	}
	if outcome.IsAdmin {
		c.io.Println("You are the first user and have been made an administrator.")
	}
	c.io.Println("Run 'myledger login' to sign in.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println("")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println("")
	c.io.Println("Authenticating...")

	result := c.session.Login(ctx, username, password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Message)
	}

	c.io.Println("")
	c.io.Println("✓ Login successful!")
	if user := c.session.User(); user != nil {
		c.io.Printf("Username: %s\n", user.Username)
		if user.IsAdmin {
			c.io.Println("Role: administrator")
		}
	}
	c.io.Println("Your session has been saved.")

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	c.io.Println("✓ Logged out.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println("")

	c.session.Restore(ctx)
	if !c.session.IsAuthenticated(ctx) {
		c.io.Println("Not authenticated. Run 'myledger login' first.")
		return nil
	}

	// Сверяемся с сервером; протухший токен здесь же разлогинит
	if result := c.session.FetchSelf(ctx); !result.Success {
		c.io.Printf("Session invalid: %s\n", result.Message)
		return nil
	}

	user := c.session.User()
	if user == nil {
		c.io.Println("Not authenticated. Run 'myledger login' first.")
		return nil
	}

	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Active:   %v\n", user.IsActive)
	if user.IsAdmin {
		c.io.Println("Role:     administrator")
	}
	return nil
}
