package cmd

import (
	"groupbuy/internal/adapters/out/postgres"
	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterSupplierCommandHandler() commands.RegisterSupplierCommandHandler {
	var f commands.SupplierUoWFactory = FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterSupplierCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitCustomOrderCommandHandler() commands.SubmitCustomOrderCommandHandler {
	var f commands.CustomOrderUoWFactory = FuncCustomOrderUoWFactory(func() commands.CustomOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitCustomOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmCustomOrderCommandHandler() commands.ConfirmCustomOrderCommandHandler {
	var f commands.CustomOrderUoWFactory = FuncCustomOrderUoWFactory(func() commands.CustomOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmCustomOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAnalyzeCustomOrderCommandHandler() commands.AnalyzeCustomOrderCommandHandler {
	var f commands.AnalysisUoWFactory = FuncAnalysisUoWFactory(func() commands.AnalysisUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAnalyzeCustomOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelCustomOrderCommandHandler() commands.CancelCustomOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelCustomOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenCollectiveOrderCommandHandler() commands.OpenCollectiveOrderCommandHandler {
	var f commands.OpenPoolUoWFactory = FuncOpenPoolUoWFactory(func() commands.OpenPoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenCollectiveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachOrderToPoolCommandHandler() commands.AttachOrderToPoolCommandHandler {
	return commands.NewAttachOrderToPoolCommandHandler(c.createPoolMembersUoWFactory())
}

func (c *CompositionRoot) CreateDetachOrderFromPoolCommandHandler() commands.DetachOrderFromPoolCommandHandler {
	return commands.NewDetachOrderFromPoolCommandHandler(c.createPoolMembersUoWFactory())
}

func (c *CompositionRoot) CreateCloseCollectiveOrderCommandHandler() commands.CloseCollectiveOrderCommandHandler {
	return commands.NewCloseCollectiveOrderCommandHandler(c.createPoolUoWFactory())
}

func (c *CompositionRoot) CreateOpenPaymentWindowCommandHandler() commands.OpenPaymentWindowCommandHandler {
	return commands.NewOpenPaymentWindowCommandHandler(c.createPoolUoWFactory())
}

func (c *CompositionRoot) CreateRecordCustomerPaymentCommandHandler() commands.RecordCustomerPaymentCommandHandler {
	return commands.NewRecordCustomerPaymentCommandHandler(c.createPoolUoWFactory())
}

func (c *CompositionRoot) CreatePaySupplierCommandHandler() commands.PaySupplierCommandHandler {
	return commands.NewPaySupplierCommandHandler(c.createPoolMembersUoWFactory())
}

func (c *CompositionRoot) CreateMarkShippedCommandHandler() commands.MarkShippedCommandHandler {
	return commands.NewMarkShippedCommandHandler(c.createPoolMembersUoWFactory())
}

func (c *CompositionRoot) CreateMarkReceivedCommandHandler() commands.MarkReceivedCommandHandler {
	return commands.NewMarkReceivedCommandHandler(c.createPoolMembersUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.createPoolMembersUoWFactory())
}

func (c *CompositionRoot) CreateCancelCollectiveOrderCommandHandler() commands.CancelCollectiveOrderCommandHandler {
	return commands.NewCancelCollectiveOrderCommandHandler(c.createPoolMembersUoWFactory())
}

func (c *CompositionRoot) CreateRecordCreditCommandHandler() commands.RecordCreditCommandHandler {
	return commands.NewRecordCreditCommandHandler(c.createLedgerUoWFactory())
}

func (c *CompositionRoot) CreateRecordDebitCommandHandler() commands.RecordDebitCommandHandler {
	return commands.NewRecordDebitCommandHandler(c.createLedgerUoWFactory())
}

func (c *CompositionRoot) CreateTransferCreditsCommandHandler() commands.TransferCreditsCommandHandler {
	return commands.NewTransferCreditsCommandHandler(c.createLedgerUoWFactory())
}

func (c *CompositionRoot) CreateUseCreditEntryCommandHandler() commands.UseCreditEntryCommandHandler {
	return commands.NewUseCreditEntryCommandHandler(c.createLedgerUoWFactory())
}

func (c *CompositionRoot) CreateExpireOverdueCreditsCommandHandler() commands.ExpireOverdueCreditsCommandHandler {
	return commands.NewExpireOverdueCreditsCommandHandler(c.createLedgerUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersPendingAnalysisQueryHandler() queries.GetOrdersPendingAnalysisQueryHandler {
	return queries.NewGetOrdersPendingAnalysisQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConfirmedUnpooledOrdersQueryHandler() queries.GetConfirmedUnpooledOrdersQueryHandler {
	return queries.NewGetConfirmedUnpooledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPoolsEligibleForActionQueryHandler() queries.GetPoolsEligibleForActionQueryHandler {
	return queries.NewGetPoolsEligibleForActionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPoolProgressQueryHandler() queries.GetPoolProgressQueryHandler {
	return queries.NewGetPoolProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerBalanceQueryHandler() queries.GetCustomerBalanceQueryHandler {
	return queries.NewGetCustomerBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerLedgerHistoryQueryHandler() queries.GetCustomerLedgerHistoryQueryHandler {
	return queries.NewGetCustomerLedgerHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverduePaymentPoolsQueryHandler() queries.GetOverduePaymentPoolsQueryHandler {
	return queries.NewGetOverduePaymentPoolsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createPoolUoWFactory() commands.PoolUoWFactory {
	return FuncPoolUoWFactory(func() commands.PoolUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createPoolMembersUoWFactory() commands.PoolMembersUoWFactory {
	return FuncPoolMembersUoWFactory(func() commands.PoolMembersUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createLedgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncSupplierUoWFactory func() commands.SupplierUoW

func (f FuncSupplierUoWFactory) Create() commands.SupplierUoW {
	return f()
}

type FuncCustomOrderUoWFactory func() commands.CustomOrderUoW

func (f FuncCustomOrderUoWFactory) Create() commands.CustomOrderUoW {
	return f()
}

type FuncAnalysisUoWFactory func() commands.AnalysisUoW

func (f FuncAnalysisUoWFactory) Create() commands.AnalysisUoW {
	return f()
}

type FuncPoolUoWFactory func() commands.PoolUoW

func (f FuncPoolUoWFactory) Create() commands.PoolUoW {
	return f()
}

type FuncPoolMembersUoWFactory func() commands.PoolMembersUoW

func (f FuncPoolMembersUoWFactory) Create() commands.PoolMembersUoW {
	return f()
}

type FuncOpenPoolUoWFactory func() commands.OpenPoolUoW

func (f FuncOpenPoolUoWFactory) Create() commands.OpenPoolUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
