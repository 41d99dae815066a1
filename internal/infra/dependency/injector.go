// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/grocery-pos/backend/config"
	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/application/usecase/analytics"
	"github.com/grocery-pos/backend/internal/application/usecase/billing"
	"github.com/grocery-pos/backend/internal/application/usecase/billsearch"
	"github.com/grocery-pos/backend/internal/application/usecase/report"
	"github.com/grocery-pos/backend/internal/domain/entity"
	"github.com/grocery-pos/backend/internal/infra/server/router"
	"github.com/grocery-pos/backend/internal/integration/email"
	"github.com/grocery-pos/backend/internal/integration/entrypoint/controller"
	"github.com/grocery-pos/backend/internal/integration/filestore"
	"github.com/grocery-pos/backend/internal/integration/persistence"
	"github.com/grocery-pos/backend/internal/integration/printer"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) (*Injector, error) {
	// Load the catalog: the built-in one unless a JSON file is configured
	catalog := entity.DefaultCatalog()
	if cfg.Store.CatalogPath != "" {
		loaded, err := entity.LoadCatalog(cfg.Store.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		catalog = loaded
	}

	// Create stores
	receiptStore, err := filestore.NewReceiptStore(cfg.Store.BillsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create receipt store: %w", err)
	}
	rowSetStore, err := filestore.NewRowSetStore(cfg.Store.BillsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create row-set store: %w", err)
	}
	salesRowRepo := persistence.NewSalesRowRepository(db)

	// Aggregation reads one source per persisted row-set file so a
	// corrupt file only costs its own rows. The master store serves as
	// the fallback source when no files are present, e.g. after the
	// bills directory was wiped.
	sources := func() []adapter.RowSource {
		if list := filestore.ListRowSetSources(cfg.Store.BillsDir); len(list) > 0 {
			return list
		}
		return []adapter.RowSource{persistence.NewMasterRowSource(salesRowRepo)}
	}

	// Create email sender: Resend when a key is configured, otherwise
	// SMTP with the caller's own credentials
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewSMTPClient(cfg.Email.SMTPHost, cfg.Email.SMTPPort)
	}

	// Create printer
	var billPrinter adapter.Printer
	if cfg.Printer.Enabled {
		billPrinter = printer.NewSpoolerPrinter(cfg.Printer.SpoolerCommand)
	} else {
		billPrinter = printer.NewUnavailablePrinter()
	}

	// Create billing use cases
	newBillNumberUseCase := billing.NewNewBillNumberUseCase(receiptStore)
	calculateBillUseCase := billing.NewCalculateBillUseCase(catalog)
	saveBillUseCase := billing.NewSaveBillUseCase(receiptStore, rowSetStore, salesRowRepo)
	emailBillUseCase := billing.NewEmailBillUseCase(receiptStore, emailSender)
	printBillUseCase := billing.NewPrintBillUseCase(receiptStore, billPrinter)

	// Create bill search use cases
	listBillsUseCase := billsearch.NewListBillsUseCase(receiptStore)
	loadBillUseCase := billsearch.NewLoadBillUseCase(receiptStore)
	findByCustomerUseCase := billsearch.NewFindByCustomerUseCase(receiptStore)
	findByDateUseCase := billsearch.NewFindByDateUseCase(receiptStore)

	// Create analytics and report use cases
	aggregateSalesUseCase := analytics.NewAggregateSalesUseCase()
	exportReportUseCase := report.NewExportReportUseCase()

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	catalogController := controller.NewCatalogController(catalog)
	billingController := controller.NewBillingController(
		newBillNumberUseCase,
		calculateBillUseCase,
		saveBillUseCase,
		emailBillUseCase,
		printBillUseCase,
	)
	billsController := controller.NewBillsController(
		listBillsUseCase,
		loadBillUseCase,
		findByCustomerUseCase,
		findByDateUseCase,
	)
	analyticsController := controller.NewAnalyticsController(aggregateSalesUseCase, sources)
	reportController := controller.NewReportController(aggregateSalesUseCase, exportReportUseCase, sources, time.Now)

	// Create router
	r := router.NewRouter(
		healthController,
		catalogController,
		billingController,
		billsController,
		analyticsController,
		reportController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}
