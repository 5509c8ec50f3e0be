package cmd

import (
	"log/slog"

	"returns/internal/adapters/out/email"
	"returns/internal/adapters/out/postgres"
	"returns/internal/adapters/out/postgres/orderclient"
	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/services"
	"returns/internal/core/ports"
	"returns/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(
		f,
		c.createOrderClient(),
		services.NewTrackingCodeGenerator(),
		c.createNotifier(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateRequestReasonCommandHandler() commands.UpdateRequestReasonCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRequestReasonCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeRequestStatusCommandHandler() commands.ChangeRequestStatusCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeRequestStatusCommandHandler(
		f,
		c.createOrderClient(),
		c.createNotifier(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateAttachOrderReferenceCommandHandler() commands.AttachOrderReferenceCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachOrderReferenceCommandHandler(f, c.createOrderClient())
}

func (c *CompositionRoot) CreateGetCustomerRequestsQueryHandler() queries.GetCustomerRequestsQueryHandler {
	return queries.NewGetCustomerRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequestsForReviewQueryHandler() queries.GetRequestsForReviewQueryHandler {
	return queries.NewGetRequestsForReviewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetRequestsForReviewQueryHandler(), c.createNotifier(), c.logger)
}

func (c *CompositionRoot) createOrderClient() ports.OrderClient {
	return orderclient.NewGormOrderClient(c.gormDB)
}

func (c *CompositionRoot) createNotifier() ports.Notifier {
	return email.NewSMTPNotifier(
		c.config.SMTPAddress,
		c.config.SMTPUser,
		c.config.SMTPPassword,
		email.Config{
			From:         c.config.MailFrom,
			AdminEmail:   c.config.AdminEmail,
			AdminBaseURL: c.config.AdminBaseURL,
		},
	)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}
