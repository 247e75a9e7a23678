package entities

import "strings"

// ClientKind discriminates the two client shapes.
type ClientKind string

const (
	ClientKindLegalEntity   ClientKind = "pessoaJuridica"
	ClientKindNaturalPerson ClientKind = "pessoaFisica"
)

// UnknownClientName is cached on documents whose client has no usable name.
const UnknownClientName = "Cliente Desconhecido"

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state" validate:"omitempty,len=2"`
	ZipCode      string `json:"zipCode"`
}

type Contact struct {
	Email            string `json:"email" validate:"omitempty,email"`
	EmailNFe         string `json:"emailNfe,omitempty" validate:"omitempty,email"`
	EmailBilling     string `json:"emailCobranca,omitempty" validate:"omitempty,email"`
	Phone            string `json:"phone,omitempty"`
	MobilePhone      string `json:"telefoneCelular,omitempty"`
	MainContact      string `json:"contatoPrincipal,omitempty"`
	FinancialContact string `json:"contatoFinanceiro,omitempty"`
}

// LegalEntity is the company (pessoa jurídica) variant.
type LegalEntity struct {
	RazaoSocial       string `json:"razaoSocial"`
	NomeFantasia      string `json:"nomeFantasia,omitempty"`
	CNPJ              string `json:"cnpj"`
	InscricaoEstadual string `json:"inscricaoEstadual,omitempty"`
}

// NaturalPerson is the individual (pessoa física) variant.
type NaturalPerson struct {
	NomeCompleto string `json:"nomeCompleto"`
	CPF          string `json:"cpf"`
	RG           string `json:"rg,omitempty"`
	BirthDate    string `json:"dataNascimento,omitempty"`
}

// Client is a tagged union: Kind selects which of LegalEntity / NaturalPerson
// is populated. Address and Contact are shared by both shapes.
type Client struct {
	ID            string         `json:"id"`
	Kind          ClientKind     `json:"type"`
	LegalEntity   *LegalEntity   `json:"legalEntity,omitempty"`
	NaturalPerson *NaturalPerson `json:"naturalPerson,omitempty"`
	Address       Address        `json:"address"`
	Contact       Contact        `json:"contact"`
}

func NewLegalEntityClient(le LegalEntity, addr Address, contact Contact) Client {
	return Client{Kind: ClientKindLegalEntity, LegalEntity: &le, Address: addr, Contact: contact}
}

func NewNaturalPersonClient(np NaturalPerson, addr Address, contact Contact) Client {
	return Client{Kind: ClientKindNaturalPerson, NaturalPerson: &np, Address: addr, Contact: contact}
}

// Validate enforces that exactly one variant is present, that it matches Kind
// and that its identity fields are filled.
func (c Client) Validate() error {
	if (c.LegalEntity == nil) == (c.NaturalPerson == nil) {
		return invalid("client must be either a legal entity or a natural person")
	}
	switch c.Kind {
	case ClientKindLegalEntity:
		if c.LegalEntity == nil {
			return invalid("client type %s requires legal entity data", c.Kind)
		}
		if strings.TrimSpace(c.LegalEntity.RazaoSocial) == "" || strings.TrimSpace(c.LegalEntity.CNPJ) == "" {
			return invalid("razaoSocial and cnpj are required")
		}
	case ClientKindNaturalPerson:
		if c.NaturalPerson == nil {
			return invalid("client type %s requires natural person data", c.Kind)
		}
		if strings.TrimSpace(c.NaturalPerson.NomeCompleto) == "" || strings.TrimSpace(c.NaturalPerson.CPF) == "" {
			return invalid("nomeCompleto and cpf are required")
		}
	default:
		return invalid("unknown client type %q", c.Kind)
	}
	if err := validateStruct(c.Address); err != nil {
		return err
	}
	return validateStruct(c.Contact)
}

func (c Client) Clone() Client {
	out := c
	if c.LegalEntity != nil {
		le := *c.LegalEntity
		out.LegalEntity = &le
	}
	if c.NaturalPerson != nil {
		np := *c.NaturalPerson
		out.NaturalPerson = &np
	}
	return out
}

// DisplayName is the label cached on dependent documents: legal name, else
// personal name, else fallback. A nil client yields the fallback.
func DisplayName(c *Client, fallback string) string {
	if c == nil {
		return fallback
	}
	if c.LegalEntity != nil && c.LegalEntity.RazaoSocial != "" {
		return c.LegalEntity.RazaoSocial
	}
	if c.NaturalPerson != nil && c.NaturalPerson.NomeCompleto != "" {
		return c.NaturalPerson.NomeCompleto
	}
	return fallback
}
