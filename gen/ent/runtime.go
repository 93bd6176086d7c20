// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hackybara/expense-tracker/db/ent/schema"
	"github.com/hackybara/expense-tracker/gen/ent/category"
	"github.com/hackybara/expense-tracker/gen/ent/document"
	"github.com/hackybara/expense-tracker/gen/ent/forecast"
	"github.com/hackybara/expense-tracker/gen/ent/ocrresult"
	"github.com/hackybara/expense-tracker/gen/ent/organization"
	"github.com/hackybara/expense-tracker/gen/ent/transaction"
	"github.com/hackybara/expense-tracker/gen/ent/user"
	"github.com/hackybara/expense-tracker/gen/ent/vendor"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[2].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = func() func(string) error {
		validators := categoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[3].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescUpdatedAt is the schema descriptor for updated_at field.
	categoryDescUpdatedAt := categoryFields[4].Descriptor()
	// category.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	category.DefaultUpdatedAt = categoryDescUpdatedAt.Default.(func() time.Time)
	// category.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	category.UpdateDefaultUpdatedAt = categoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[3].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = func() func(string) error {
		validators := documentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[5].Descriptor()
	// document.DefaultDocType holds the default value on creation for the doc_type field.
	document.DefaultDocType = documentDescDocType.Default.(string)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[6].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[7].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	forecastFields := schema.Forecast{}.Fields()
	_ = forecastFields
	// forecastDescHorizon is the schema descriptor for horizon field.
	forecastDescHorizon := forecastFields[2].Descriptor()
	// forecast.DefaultHorizon holds the default value on creation for the horizon field.
	forecast.DefaultHorizon = forecastDescHorizon.Default.(int)
	// forecastDescGranularity is the schema descriptor for granularity field.
	forecastDescGranularity := forecastFields[3].Descriptor()
	// forecast.DefaultGranularity holds the default value on creation for the granularity field.
	forecast.DefaultGranularity = forecastDescGranularity.Default.(string)
	// forecast.GranularityValidator is a validator for the "granularity" field. It is called by the builders before save.
	forecast.GranularityValidator = forecastDescGranularity.Validators[0].(func(string) error)
	// forecastDescComputedAt is the schema descriptor for computed_at field.
	forecastDescComputedAt := forecastFields[5].Descriptor()
	// forecast.DefaultComputedAt holds the default value on creation for the computed_at field.
	forecast.DefaultComputedAt = forecastDescComputedAt.Default.(func() time.Time)
	// forecastDescCreatedAt is the schema descriptor for created_at field.
	forecastDescCreatedAt := forecastFields[6].Descriptor()
	// forecast.DefaultCreatedAt holds the default value on creation for the created_at field.
	forecast.DefaultCreatedAt = forecastDescCreatedAt.Default.(func() time.Time)
	// forecastDescID is the schema descriptor for id field.
	forecastDescID := forecastFields[0].Descriptor()
	// forecast.DefaultID holds the default value on creation for the id field.
	forecast.DefaultID = forecastDescID.Default.(func() uuid.UUID)
	ocrresultFields := schema.OCRResult{}.Fields()
	_ = ocrresultFields
	// ocrresultDescResults is the schema descriptor for results field.
	ocrresultDescResults := ocrresultFields[4].Descriptor()
	// ocrresult.DefaultResults holds the default value on creation for the results field.
	ocrresult.DefaultResults = ocrresultDescResults.Default.(string)
	// ocrresultDescTotalAmount is the schema descriptor for total_amount field.
	ocrresultDescTotalAmount := ocrresultFields[5].Descriptor()
	// ocrresult.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	ocrresult.TotalAmountValidator = ocrresultDescTotalAmount.Validators[0].(func(float64) error)
	// ocrresultDescCurrency is the schema descriptor for currency field.
	ocrresultDescCurrency := ocrresultFields[6].Descriptor()
	// ocrresult.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	ocrresult.CurrencyValidator = func() func(string) error {
		validators := ocrresultDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrresultDescInvoiceNumber is the schema descriptor for invoice_number field.
	ocrresultDescInvoiceNumber := ocrresultFields[8].Descriptor()
	// ocrresult.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	ocrresult.InvoiceNumberValidator = ocrresultDescInvoiceNumber.Validators[0].(func(string) error)
	// ocrresultDescCreatedAt is the schema descriptor for created_at field.
	ocrresultDescCreatedAt := ocrresultFields[9].Descriptor()
	// ocrresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrresult.DefaultCreatedAt = ocrresultDescCreatedAt.Default.(func() time.Time)
	// ocrresultDescUpdatedAt is the schema descriptor for updated_at field.
	ocrresultDescUpdatedAt := ocrresultFields[10].Descriptor()
	// ocrresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ocrresult.DefaultUpdatedAt = ocrresultDescUpdatedAt.Default.(func() time.Time)
	// ocrresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ocrresult.UpdateDefaultUpdatedAt = ocrresultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ocrresultDescID is the schema descriptor for id field.
	ocrresultDescID := ocrresultFields[0].Descriptor()
	// ocrresult.DefaultID holds the default value on creation for the id field.
	ocrresult.DefaultID = ocrresultDescID.Default.(func() uuid.UUID)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = func() func(string) error {
		validators := organizationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[2].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[3].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationFields[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescDescription is the schema descriptor for description field.
	transactionDescDescription := transactionFields[5].Descriptor()
	// transaction.DefaultDescription holds the default value on creation for the description field.
	transaction.DefaultDescription = transactionDescDescription.Default.(string)
	// transaction.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	transaction.DescriptionValidator = transactionDescDescription.Validators[0].(func(string) error)
	// transactionDescAmount is the schema descriptor for amount field.
	transactionDescAmount := transactionFields[6].Descriptor()
	// transaction.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	transaction.AmountValidator = transactionDescAmount.Validators[0].(func(float64) error)
	// transactionDescCurrency is the schema descriptor for currency field.
	transactionDescCurrency := transactionFields[7].Descriptor()
	// transaction.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	transaction.CurrencyValidator = func() func(string) error {
		validators := transactionDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[10].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescUpdatedAt is the schema descriptor for updated_at field.
	transactionDescUpdatedAt := transactionFields[11].Descriptor()
	// transaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transaction.DefaultUpdatedAt = transactionDescUpdatedAt.Default.(func() time.Time)
	// transaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transaction.UpdateDefaultUpdatedAt = transactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescIsSystem is the schema descriptor for is_system field.
	userDescIsSystem := userFields[4].Descriptor()
	// user.DefaultIsSystem holds the default value on creation for the is_system field.
	user.DefaultIsSystem = userDescIsSystem.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescName is the schema descriptor for name field.
	vendorDescName := vendorFields[2].Descriptor()
	// vendor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vendor.NameValidator = func() func(string) error {
		validators := vendorDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[3].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
	// vendorDescUpdatedAt is the schema descriptor for updated_at field.
	vendorDescUpdatedAt := vendorFields[4].Descriptor()
	// vendor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendor.DefaultUpdatedAt = vendorDescUpdatedAt.Default.(func() time.Time)
	// vendor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendor.UpdateDefaultUpdatedAt = vendorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
}
