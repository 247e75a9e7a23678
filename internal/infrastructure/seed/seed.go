// Package seed loads the demo dataset and primes the numbering sequences
// from whatever the store already holds.
package seed

import (
	"context"
	"fmt"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminUsername = "administrador"
	AdminPassword = "112233"
)

// Repositories is the write surface the seeder needs.
type Repositories struct {
	Clients              interfaces.IClientRepository
	Users                interfaces.IUserRepository
	Credentials          interfaces.ICredentialStore
	Products             interfaces.IProductRepository
	ServiceOrders        interfaces.IServiceOrderRepository
	Quotes               interfaces.IQuoteRepository
	MaintenanceContracts interfaces.IMaintenanceContractRepository
	Invoices             interfaces.IInvoiceRepository
	Writer               interfaces.IWriteSerializer
}

// DemoData loads the demo dataset into an empty store. A store that already
// holds clients is left untouched. Dates are relative to now.
func DemoData(ctx context.Context, repos Repositories, now time.Time, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	return repos.Writer.Serialize(ctx, func(ctx context.Context) error {
		existing, err := repos.Clients.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			logger.Info("[seed] store not empty, skipping demo data", zap.Int("clients", len(existing)))
			return nil
		}

		hash, err := usecase.HashSecret(AdminPassword, bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		// Collections are newest-first, so each list is inserted last to first.
		for _, c := range reversed(clients()) {
			if _, err := repos.Clients.Create(ctx, c); err != nil {
				return fmt.Errorf("seed client %s: %w", c.ID, err)
			}
		}
		if err := repos.Credentials.SetSecret(ctx, AdminUsername, hash); err != nil {
			return err
		}
		if _, err := repos.Users.Create(ctx, admin()); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		for _, p := range reversed(products()) {
			if _, err := repos.Products.Create(ctx, p); err != nil {
				return fmt.Errorf("seed product %s: %w", p.ID, err)
			}
		}
		for _, o := range reversed(serviceOrders(now)) {
			if _, err := repos.ServiceOrders.Create(ctx, o); err != nil {
				return fmt.Errorf("seed service order %s: %w", o.ID, err)
			}
		}
		for _, q := range reversed(quotes(now)) {
			if _, err := repos.Quotes.Create(ctx, q); err != nil {
				return fmt.Errorf("seed quote %s: %w", q.ID, err)
			}
		}
		for _, m := range reversed(contracts()) {
			if _, err := repos.MaintenanceContracts.Create(ctx, m); err != nil {
				return fmt.Errorf("seed contract %s: %w", m.ID, err)
			}
		}
		logger.Info("[seed] demo data loaded")
		return nil
	})
}

// PrimeSequence advances every numbering namespace past the numbers already
// present in the store.
func PrimeSequence(ctx context.Context, repos Repositories, seq *numbering.Sequence) error {
	orders, err := repos.ServiceOrders.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		seq.Observe(numbering.ServiceOrders, o.ServiceOrderNumber)
	}

	quotes, err := repos.Quotes.List(ctx)
	if err != nil {
		return err
	}
	for _, q := range quotes {
		seq.Observe(numbering.Quotes, q.QuoteNumber)
	}

	contracts, err := repos.MaintenanceContracts.List(ctx)
	if err != nil {
		return err
	}
	for _, m := range contracts {
		seq.Observe(numbering.MaintenanceContracts, m.ContractNumber)
	}

	invoices, err := repos.Invoices.List(ctx)
	if err != nil {
		return err
	}
	for _, inv := range invoices {
		seq.Observe(numbering.Invoices, inv.InvoiceNumber)
	}
	return nil
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(now time.Time, offset int) time.Time {
	return now.UTC().AddDate(0, 0, offset)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func admin() entities.User {
	return entities.User{
		ID:       "user-admin",
		Name:     "Administrador do Sistema",
		Username: AdminUsername,
		Email:    "admin@fieldservice.com",
		Role:     "Administrador",
		Status:   entities.UserStatusActive,
	}
}

func clients() []entities.Client {
	techSolutions := entities.NewLegalEntityClient(
		entities.LegalEntity{RazaoSocial: "Tech Solutions & Inovações Ltda.", NomeFantasia: "Tech Solutions", CNPJ: "12.345.678/0001-99", InscricaoEstadual: "111.222.333.444"},
		entities.Address{Street: "Rua das Inovações", Number: "123", Complement: "Andar 10", Neighborhood: "Centro", City: "São Paulo", State: "SP", ZipCode: "01001-000"},
		entities.Contact{Email: "contato@techsolutions.com", EmailNFe: "nfe@techsolutions.com", EmailBilling: "financeiro@techsolutions.com", Phone: "(11) 98765-4321", MainContact: "Ana", FinancialContact: "Roberto"},
	)
	techSolutions.ID = "cli-1"

	js := entities.NewLegalEntityClient(
		entities.LegalEntity{RazaoSocial: "João da Silva MEI", NomeFantasia: "JS Instalações", CNPJ: "23.456.789/0001-11", InscricaoEstadual: "Isento"},
		entities.Address{Street: "Av. Principal", Number: "456", Complement: "Loja B", Neighborhood: "Copacabana", City: "Rio de Janeiro", State: "RJ", ZipCode: "22020-002"},
		entities.Contact{Email: "joao.silva@jsinstalacoes.com", EmailNFe: "joao.silva@jsinstalacoes.com", EmailBilling: "joao.silva@jsinstalacoes.com", Phone: "(21) 91234-5678", MainContact: "João da Silva"},
	)
	js.ID = "cli-2"

	oliveira := entities.NewLegalEntityClient(
		entities.LegalEntity{RazaoSocial: "Comércio de Alimentos Oliveira Ltda.", NomeFantasia: "Supermercado Oliveira", CNPJ: "98.765.432/0001-22", InscricaoEstadual: "555.666.777.888"},
		entities.Address{Street: "Praça Central", Number: "789", Neighborhood: "Savassi", City: "Belo Horizonte", State: "MG", ZipCode: "30130-141"},
		entities.Contact{Email: "compras@superoliveira.com", EmailNFe: "fiscal@superoliveira.com", EmailBilling: "financeiro@superoliveira.com", Phone: "(31) 95555-4444", MainContact: "Maria Oliveira"},
	)
	oliveira.ID = "cli-3"

	fernanda := entities.NewNaturalPersonClient(
		entities.NaturalPerson{NomeCompleto: "Fernanda Costa", CPF: "123.456.789-00", RG: "22.333.444-5", BirthDate: "1990-05-15"},
		entities.Address{Street: "Rua das Flores", Number: "50", Complement: "Apto 202", Neighborhood: "Jardins", City: "São Paulo", State: "SP", ZipCode: "01401-001"},
		entities.Contact{Email: "fernanda.costa@email.com", EmailNFe: "fernanda.costa@email.com", MobilePhone: "(11) 98888-7777"},
	)
	fernanda.ID = "cli-4"

	return []entities.Client{techSolutions, js, oliveira, fernanda}
}

func products() []entities.Product {
	return []entities.Product{
		{ID: "prod-1", SKU: "TEL-001", Name: "Telefone IP Intelbras TIP 125i", Description: "Telefone IP com suporte a 1 conta SIP, PoE e alta qualidade de voz.", Category: "Telefonia", UnitOfMeasure: "unidade", QuantityInStock: 25, CostPrice: money("250.00"), SellingPrice: money("349.90"), Supplier: "Intelbras S/A"},
		{ID: "prod-2", SKU: "CAB-001", Name: "Cabo de Rede CAT6 Furukawa", Description: "Cabo de rede para instalações de alta performance.", Category: "Redes", UnitOfMeasure: "metro", QuantityInStock: 500, CostPrice: money("1.80"), SellingPrice: money("3.50"), Supplier: "Distribuidora Cabos Mil"},
		{ID: "prod-3", SKU: "CEN-001", Name: "Central Telefônica Intelbras Modulare+", Description: "Central PABX analógica para pequenas empresas.", Category: "Telefonia", UnitOfMeasure: "peça", QuantityInStock: 5, CostPrice: money("450.00"), SellingPrice: money("629.90"), Supplier: "Intelbras S/A"},
		{ID: "prod-4", SKU: "SEG-002", Name: "Câmera IP Giga Security GS0246", Description: "Câmera IP Bullet com infravermelho e resolução Full HD.", Category: "Segurança", UnitOfMeasure: "unidade", QuantityInStock: 15, CostPrice: money("280.00"), SellingPrice: money("419.99"), Supplier: "Giga Security"},
		{ID: "prod-5", SKU: "CON-001", Name: "Conector RJ45 CAT6 Blindado", Description: "Conector para montagem de cabos de rede CAT6.", Category: "Redes", UnitOfMeasure: "caixa", QuantityInStock: 10, CostPrice: money("80.00"), SellingPrice: money("150.00"), Supplier: "Distribuidora Cabos Mil"},
	}
}

func serviceOrders(now time.Time) []entities.ServiceOrder {
	completedAt := day(now, -1)
	return []entities.ServiceOrder{
		{
			ID: "os-001", ServiceOrderNumber: "OS-0001", ClientID: "cli-1", ClientName: "Tech Solutions & Inovações Ltda.",
			RequestDescription: "Servidor principal apresentando lentidão nos últimos dias. O acesso aos arquivos está demorando mais que o normal.",
			ServiceType:        "Manutenção de Servidor", Location: "Rua das Inovações, 123, São Paulo, SP",
			ScheduledDate: day(now, 2), Notes: "Verificar performance do servidor principal e fazer limpeza de logs.",
			Status: entities.ServiceOrderStatusPending, Technician: "Carlos",
		},
		{
			ID: "os-002", ServiceOrderNumber: "OS-0002", ClientID: "cli-2", ClientName: "João da Silva MEI",
			RequestDescription: "Cliente solicitou a instalação de 4 câmeras na frente da casa para monitorar a entrada e a garagem.",
			ServiceType:        "Instalação de Câmeras", Location: "Av. Principal, 456, Rio de Janeiro, RJ",
			ScheduledDate: day(now, 0), Notes: "Instalar 4 câmeras de segurança na área externa da residência.",
			Status: entities.ServiceOrderStatusInProgress, Technician: "Ana",
		},
		{
			ID: "os-003", ServiceOrderNumber: "OS-0003", ClientID: "cli-3", ClientName: "Comércio de Alimentos Oliveira Ltda.",
			RequestDescription: "Funcionários do segundo andar reclamando que o sinal de Wi-Fi está muito fraco e caindo toda hora.",
			ServiceType:        "Reparo de Rede Wi-Fi", Location: "Praça Central, 789, Belo Horizonte, MG",
			ScheduledDate: day(now, -1), Notes: "Sinal de Wi-Fi fraco no segundo andar.",
			Status: entities.ServiceOrderStatusCompleted, Technician: "Carlos", CompletedAt: &completedAt,
		},
	}
}

func quotes(now time.Time) []entities.Quote {
	valid1, valid2 := day(now, 20), day(now, 28)
	return []entities.Quote{
		{
			ID: "qt-001", QuoteNumber: "ORC-0001", ClientID: "cli-1", ClientName: "Tech Solutions & Inovações Ltda.",
			QuoteDate: day(now, -10), ValidUntil: &valid1,
			Items: []entities.LineItem{
				{ID: "item-1", Description: "Instalação e configuração de 10 câmeras de segurança Intelbras Full HD", Quantity: decimal.NewFromInt(1), UnitPrice: money("4500")},
				{ID: "item-2", Description: "Licença anual de software de monitoramento", Quantity: decimal.NewFromInt(1), UnitPrice: money("800")},
			},
			Subtotal: money("5300"), Discount: money("150"), Total: money("5150"),
			Observations:         "Infraestrutura de cabos não inclusa.",
			CommercialConditions: "Garantia de 12 meses para equipamentos. Pagamento em 3x no boleto.",
			Status:               entities.QuoteStatusSent,
		},
		{
			ID: "qt-002", QuoteNumber: "ORC-0002", ClientID: "cli-4", ClientName: "Fernanda Costa",
			QuoteDate: day(now, -2), ValidUntil: &valid2,
			Items: []entities.LineItem{
				{ID: "item-3", Description: "Consultoria e configuração de rede Wi-Fi Mesh", Quantity: decimal.NewFromInt(1), UnitPrice: money("600")},
			},
			Subtotal: money("600"), Discount: decimal.Zero, Total: money("600"),
			Observations:         "Visita técnica para análise do ambiente e recomendação de equipamentos.",
			CommercialConditions: "Pagamento via PIX na conclusão do serviço.",
			Status:               entities.QuoteStatusAccepted,
		},
	}
}

func contracts() []entities.MaintenanceContract {
	return []entities.MaintenanceContract{
		{
			ID: "man-1", ContractNumber: "CT-MAN-001", ClientID: "cli-1", ClientName: "Tech Solutions & Inovações Ltda.",
			Type: "Suporte Remoto", StartDate: date("2024-01-01"), EndDate: date("2024-12-31"), MonthlyValue: money("350.00"),
			Scope:  "Suporte remoto ilimitado para central telefônica e 10 ramais.",
			Status: entities.MaintenanceStatusActive,
		},
		{
			ID: "man-2", ContractNumber: "CT-MAN-002", ClientID: "cli-3", ClientName: "Comércio de Alimentos Oliveira Ltda.",
			Type: "Suporte Presencial", StartDate: date("2023-06-01"), EndDate: date("2024-05-31"), MonthlyValue: money("800.00"),
			Scope:  "Uma visita presencial mensal para manutenção preventiva e corretiva da infraestrutura de rede.",
			Status: entities.MaintenanceStatusExpired,
		},
	}
}
