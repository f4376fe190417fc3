// Package seed holds the compiled-in demo collections the server runs on
// when no database is configured. Accounts, profiles and listings share
// fixed IDs so ownership links stay stable across restarts.
package seed

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"techconnect/internal/domain"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
)

// DemoSecret is the secret every seeded demo account signs in with.
const DemoSecret = "demo123"

var (
	userAnaID    = uuid.MustParse("5e0fc846-6bbc-41a5-9a71-0f22b9b68d61")
	userCarlosID = uuid.MustParse("9b1f7c1a-2d35-4c77-8f34-6a9a4cf2b70e")
	userJuliaID  = uuid.MustParse("f3b2a7d8-40f1-4a04-bd56-9a2f5d6c08c3")
	userNovaID   = uuid.MustParse("1c9c4f07-08a8-4a2b-9a1a-51f2d9f3e8b4")
	userFluxoID  = uuid.MustParse("7ad25c6e-9c31-4c8e-b0a3-ec1c5e2f94d0")
)

// Accounts returns the demo registry. Secrets are bcrypt-hashed here so
// no hash material is checked in.
func Accounts(now time.Time) ([]account.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	mk := func(id uuid.UUID, email string, kind account.Kind) account.Account {
		return account.Account{
			ID:         id,
			Email:      email,
			SecretHash: string(hash),
			Kind:       kind,
			CreatedAt:  now,
		}
	}

	return []account.Account{
		mk(userAnaID, "ana@exemplo.com", account.KindProfessional),
		mk(userCarlosID, "carlos@exemplo.com", account.KindProfessional),
		mk(userJuliaID, "julia@exemplo.com", account.KindProfessional),
		mk(userNovaID, "contato@novatech.com.br", account.KindCompany),
		mk(userFluxoID, "rh@fluxodigital.com.br", account.KindCompany),
	}, nil
}

func Profiles() []profile.Profile {
	return []profile.Profile{
		{
			ID:           uuid.MustParse("a1e8f2a0-31f5-4c56-92b2-1f14d6a2b9c1"),
			UserID:       userAnaID,
			Name:         "Ana Souza",
			Headline:     "Especialista Bubble & Make",
			Bio:          "Construo produtos completos sem escrever uma linha de código. Nos últimos quatro anos entreguei mais de vinte aplicativos em Bubble integrados a CRMs, gateways de pagamento e automações em Make, sempre com foco em lançar rápido e iterar com dados reais de usuários.",
			Skills:       []string{"Bubble", "Make", "Airtable", "Zapier"},
			Level:        domain.LevelSenior,
			Location:     "São Paulo, SP",
			Availability: profile.AvailabilityAvailable,
			Contact: profile.Contact{
				Email:     "ana.souza@exemplo.com",
				Phone:     "+55 11 98888-0001",
				Portfolio: "https://portfolio.anasouza.dev",
				Website:   "https://anasouza.dev",
				LinkedIn:  "https://linkedin.com/in/anasouza-nocode",
			},
		},
		{
			ID:           uuid.MustParse("b2c9d3e1-45a6-4d67-a3c3-2e25e7b3cad2"),
			UserID:       userCarlosID,
			Name:         "Carlos Lima",
			Headline:     "Desenvolvedor Webflow",
			Bio:          "Sites institucionais e e-commerces em Webflow com animações e CMS estruturado. Trabalho junto com designers para transformar layouts do Figma em páginas rápidas e responsivas.",
			Skills:       []string{"Webflow", "Figma", "Wized"},
			Level:        domain.LevelMid,
			Location:     "Belo Horizonte, MG",
			Availability: profile.AvailabilitySeekingOpportunities,
			Contact: profile.Contact{
				Email:    "carlos.lima@exemplo.com",
				Phone:    "+55 31 97777-0002",
				LinkedIn: "https://linkedin.com/in/carloslima-webflow",
			},
		},
		{
			ID:           uuid.MustParse("c3dae4f2-56b7-4e78-b4d4-3f36f8c4dbe3"),
			UserID:       userJuliaID,
			Name:         "Júlia Ferreira",
			Headline:     "Automações e integrações low-code",
			Bio:          "Automatizo operações com Zapier, Make e n8n. Já reduzi em 70% o trabalho manual de times de vendas conectando planilhas, CRMs e ferramentas de atendimento.",
			Skills:       []string{"Zapier", "Make", "n8n", "Notion", "Airtable"},
			Level:        domain.LevelJunior,
			Location:     "Remoto",
			Availability: profile.AvailabilityBusy,
			Contact: profile.Contact{
				Email: "julia.ferreira@exemplo.com",
			},
		},
	}
}

func Listings(now time.Time) []listing.Listing {
	return []listing.Listing{
		{
			ID:             uuid.MustParse("d4ebf5a3-67c8-4f89-c5e5-4a47a9d5ecf4"),
			UserID:         userNovaID,
			CompanyName:    "NovaTech",
			Title:          "Desenvolvedor Bubble Sênior",
			ContractKind:   listing.ContractPJ,
			Level:          domain.LevelSenior,
			WorkMode:       listing.WorkRemote,
			BudgetRange:    "R$ 8.000 - R$ 12.000",
			Description:    "Procuramos uma pessoa desenvolvedora Bubble experiente para liderar a construção do nosso novo produto SaaS de gestão financeira. Você vai modelar o banco de dados, desenhar fluxos de trabalho complexos e integrar APIs de pagamento, trabalhando lado a lado com produto e design em ciclos semanais.",
			RequiredSkills: []string{"Bubble", "API Connector", "Stripe"},
			Location:       "Remoto",
			CreatedAt:      now.AddDate(0, 0, -3),
			Contact: listing.Contact{
				Email:   "vagas@novatech.com.br",
				Phone:   "+55 11 3333-0001",
				Website: "https://novatech.com.br",
			},
		},
		{
			ID:             uuid.MustParse("e5fca6b4-78d9-4a9a-d6f6-5b58bae6fda5"),
			UserID:         userNovaID,
			CompanyName:    "NovaTech",
			Title:          "Especialista Webflow",
			ContractKind:   listing.ContractFreelancer,
			Level:          domain.LevelMid,
			WorkMode:       listing.WorkHybrid,
			Description:    "Projeto de três meses para redesenhar nosso site institucional em Webflow, com CMS para blog e área de carreiras.",
			RequiredSkills: []string{"Webflow"},
			Location:       "São Paulo, SP",
			CreatedAt:      now.AddDate(0, 0, -7),
			Contact: listing.Contact{
				Email: "vagas@novatech.com.br",
			},
		},
		{
			ID:             uuid.MustParse("f6ab07c5-89ea-4bab-e7a7-6c69cbf7aeb6"),
			UserID:         userFluxoID,
			CompanyName:    "Fluxo Digital",
			Title:          "Analista de Automações",
			ContractKind:   listing.ContractCLT,
			Level:          domain.LevelJunior,
			WorkMode:       listing.WorkOnSite,
			BudgetRange:    "R$ 4.000 - R$ 5.500",
			Description:    "Vaga para construir e manter automações internas com Bubble e Make, conectando nosso CRM, planilhas e ferramentas de atendimento ao cliente.",
			RequiredSkills: []string{"Bubble", "Make"},
			Location:       "Curitiba, PR",
			CreatedAt:      now.AddDate(0, 0, -1),
			Contact: listing.Contact{
				Email:   "rh@fluxodigital.com.br",
				Website: "https://fluxodigital.com.br",
			},
		},
	}
}
