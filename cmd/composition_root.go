package cmd

import (
	"fixxo/internal/adapters/out/postgres"
	"fixxo/internal/core/application/usecases/commands"
	"fixxo/internal/core/application/usecases/queries"
	"fixxo/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRiderCommandHandler() commands.UpdateRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRiderCommandHandler() commands.DeleteRiderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRiderAvailabilityCommandHandler() commands.SetRiderAvailabilityCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRiderAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateOverrideRequestStatusCommandHandler() commands.OverrideRequestStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideRequestStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceRequestCommandHandler() commands.AdvanceRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteAllRequestsCommandHandler() commands.CompleteAllRequestsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteAllRequestsCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileAvailabilityCommandHandler() commands.ReconcileAvailabilityCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateListRidersQueryHandler() queries.ListRidersQueryHandler {
	return queries.NewListRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRequestsQueryHandler() queries.ListRequestsQueryHandler {
	return queries.NewListRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRiderTasksQueryHandler() queries.RiderTasksQueryHandler {
	return queries.NewRiderTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardStatsQueryHandler() queries.DashboardStatsQueryHandler {
	return queries.NewDashboardStatsQueryHandler(c.gormDB)
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
