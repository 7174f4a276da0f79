package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/application/ordering"
	"github.com/bradsaav/PizzaStore/internal/application/ports"
	"github.com/bradsaav/PizzaStore/internal/application/usecase"
	infrapdf "github.com/bradsaav/PizzaStore/internal/infrastructure/pdf"
	"github.com/bradsaav/PizzaStore/internal/infrastructure/postgres"
	"github.com/bradsaav/PizzaStore/internal/infrastructure/rabbitmq"
	"github.com/bradsaav/PizzaStore/internal/interfaces/cli"
	"github.com/bradsaav/PizzaStore/pkg/config"
	"github.com/bradsaav/PizzaStore/pkg/logger"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func usage(prog string) string {
	return fmt.Sprintf("Usage: %s <dbname> <port> <user>", filepath.Base(prog))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) != 4 {
		fmt.Fprintln(stderr, usage(args[0]))
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "cargar configuración: %v\n", err)
		return exitFatal
	}
	cfg.DB, err = cfg.DB.WithArgs(args[1], args[2], args[3])
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage(args[0]))
		return exitUsage
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   stderr,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.DBName).
		Int("port", cfg.DB.Port).
		Msg("iniciando cliente")

	// Sin manejo de señales: Ctrl-C termina el proceso como cualquier programa de consola.
	ctx := context.Background()

	fmt.Fprint(stdout, "Connecting to database...")
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stderr, "Make sure you started postgres on this machine")
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return exitFatal
	}
	fmt.Fprintln(stdout, "Done")
	defer func() {
		fmt.Fprint(stdout, "Disconnecting from database...")
		pool.Close()
		fmt.Fprintln(stdout, "Done\n\nBye !")
	}()

	// Eventos de pedidos: solo si hay broker configurado.
	var events ports.OrderEventPublisher = ports.NoopPublisher{}
	if cfg.AMQP.Enabled() {
		pub, err := rabbitmq.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.App.Name)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ no disponible, eventos deshabilitados")
		} else {
			defer pub.Close()
			events = pub
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	guard := auth.NewGuard(userRepo)
	ordersUC := ordering.NewOrderUseCase(guard, orderRepo, listingRepo, events, log)

	app := cli.New(cli.Deps{
		Auth:       auth.NewAuthUseCase(userRepo, log),
		Profile:    usecase.NewProfileUseCase(guard, userRepo),
		Catalog:    usecase.NewCatalogUseCase(guard, listingRepo),
		MenuAdmin:  usecase.NewMenuAdminUseCase(guard, itemRepo),
		UserAdmin:  usecase.NewUserAdminUseCase(guard, userRepo),
		PlaceOrder: ordering.NewPlaceOrderUseCase(guard, itemRepo, listingRepo, txRunner, events, log),
		Orders:     ordersUC,
		Receipts: ordering.NewReceiptUseCase(
			ordersUC, storeRepo, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name), cfg.Receipt.Dir,
		),
		Log: log,
	}, stdin, stdout, stderr)

	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("sesión finalizada con error")
		fmt.Fprintln(stderr, err)
		return exitFatal
	}
	return exitOK
}
