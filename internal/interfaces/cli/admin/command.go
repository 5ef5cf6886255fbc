// Package admin implements the `teamtrack admin` command for creating
// administrator accounts from the terminal.
package admin

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"teamtrack/internal/application/activity"
	userdto "teamtrack/internal/application/user/dto"
	userUC "teamtrack/internal/application/user/usecases"
	"teamtrack/internal/infrastructure/auth"
	"teamtrack/internal/infrastructure/config"
	"teamtrack/internal/infrastructure/database"
	"teamtrack/internal/infrastructure/repository"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/logger"
)

var (
	env       string
	username  string
	email     string
	firstName string
	lastName  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Long:  `Create a new administrator account. The password is read from the terminal and never echoed.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&email, "email", "m", "", "Email address (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "Site", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "Admin", "Last name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := readPassword()
	if err != nil {
		return err
	}

	log := logger.NewLogger()
	db := database.Get()

	userRepo := repository.NewUserRepository(db, log)
	roleRepo := repository.NewRoleRepository(db, log)
	activityRepo := repository.NewActivityLogRepository(db, log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	recorder := activity.NewRecorder(activityRepo, log)

	adminRole, err := roleRepo.GetBySlug(context.Background(), authorization.RoleAdmin.String())
	if err != nil {
		return fmt.Errorf("failed to look up admin role: %w", err)
	}
	if adminRole == nil {
		return fmt.Errorf("admin role not seeded; run the server or migrations first")
	}

	create := userUC.NewCreateUserUseCase(userRepo, roleRepo, hasher, recorder, log)
	resp, err := create.Execute(context.Background(), 0, userdto.CreateUserRequest{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		RoleID:    adminRole.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	fmt.Fprintf(os.Stdout, "administrator %q created with ID %d\n", resp.Username, resp.ID)
	return nil
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stdout, "Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stdout, "Confirm password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(first) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	return string(first), nil
}
