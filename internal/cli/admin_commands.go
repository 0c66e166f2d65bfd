package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/core/services"
)

func (c *CLI) handleAdmin(args []string) error {
	if len(args) == 0 {
		c.printAdminHelp()
		return nil
	}

	switch args[0] {
	case "login":
		return c.handleAdminLogin(args[1:])
	case "logout":
		return c.handleAdminLogout(args[1:])
	case "existe":
		return c.handleAdminExiste(args[1:])
	case "primeiro-acesso":
		return c.handleAdminPrimeiroAcesso(args[1:])
	case "clientes":
		return c.handleAdminClientes(args[1:])
	case "nova":
		return c.handleAdminNova(args[1:])
	case "editar":
		return c.handleAdminEditar(args[1:])
	case "excluir":
		return c.handleAdminExcluir(args[1:])
	case "propostas":
		return c.handleAdminPropostas(args[1:])
	case "responder":
		return c.handleAdminResponder(args[1:])
	case "aceitar":
		return c.handleAdminAceitar(args[1:])
	case "rejeitar":
		return c.handleAdminRejeitar(args[1:])
	case "excluir-proposta":
		return c.handleAdminExcluirProposta(args[1:])
	case "help", "ajuda":
		c.printAdminHelp()
		return nil
	default:
		return fmt.Errorf("subcomando desconhecido: admin %s", args[0])
	}
}

func (c *CLI) handleAdminLogin(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: admin login <email>")
	}

	senha, err := c.readPassword("Senha: ")
	if err != nil {
		return err
	}

	admin, err := c.Admins.Login(context.Background(), args[0], senha)
	if err != nil {
		return err
	}

	fmt.Printf("Bem-vindo(a), %s (nível %d)\n", admin.Nome, admin.Nivel)
	return nil
}

func (c *CLI) handleAdminLogout(args []string) error {
	if err := c.Admins.Logout(); err != nil {
		return err
	}
	fmt.Println("Sessão de administrador encerrada")
	return nil
}

func (c *CLI) handleAdminExiste(args []string) error {
	existe, err := c.Admins.Existe(context.Background())
	if err != nil {
		return err
	}
	if existe {
		fmt.Println("Já existe administrador cadastrado")
	} else {
		fmt.Println("Nenhum administrador cadastrado. Use 'admin primeiro-acesso'")
	}
	return nil
}

func (c *CLI) handleAdminPrimeiroAcesso(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("uso: admin primeiro-acesso <nome> <email>")
	}

	senha, err := c.readPassword("Senha: ")
	if err != nil {
		return err
	}
	confirma, err := c.readPassword("Confirme a senha: ")
	if err != nil {
		return err
	}

	if err := c.Admins.PrimeiroAcesso(context.Background(), args[0], args[1], senha, confirma); err != nil {
		return err
	}

	fmt.Println("Administrador criado com sucesso! Use 'admin login' para entrar.")
	return nil
}

func (c *CLI) handleAdminClientes(args []string) error {
	clientes, err := c.Admins.Clientes(context.Background())
	if err != nil {
		return err
	}
	if len(clientes) == 0 {
		fmt.Println("Nenhum cliente cadastrado")
		return nil
	}
	for _, cl := range clientes {
		fmt.Printf("%-36s  %-24s  %-28s  %s\n", cl.ID, cl.Nome, cl.Email, cl.Cidade)
	}
	return nil
}

func (c *CLI) handleAdminNova(args []string) error {
	input, err := parseEmbarcacaoArgs(args)
	if err != nil {
		return fmt.Errorf("uso: admin nova <modelo> <ano> <preco> <marcaId> [motor]")
	}

	if err := c.Catalog.Cadastra(context.Background(), input); err != nil {
		return err
	}
	fmt.Println("Embarcação cadastrada com sucesso!")
	return nil
}

func (c *CLI) handleAdminEditar(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: admin editar <id> <modelo> <ano> <preco> <marcaId> [motor]")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}

	input, err := parseEmbarcacaoArgs(args[1:])
	if err != nil {
		return fmt.Errorf("uso: admin editar <id> <modelo> <ano> <preco> <marcaId> [motor]")
	}

	if err := c.Catalog.Atualiza(context.Background(), id, input); err != nil {
		return err
	}
	fmt.Println("Embarcação atualizada com sucesso!")
	return nil
}

func (c *CLI) handleAdminExcluir(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: admin excluir <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}

	if !c.confirm(fmt.Sprintf("Excluir a embarcação %d?", id)) {
		fmt.Println("Exclusão cancelada")
		return nil
	}

	if err := c.Catalog.Exclui(context.Background(), id); err != nil {
		return err
	}
	fmt.Println("Embarcação excluída com sucesso!")
	return nil
}

func (c *CLI) handleAdminPropostas(args []string) error {
	propostas, err := c.Propostas.Todas(context.Background())
	if err != nil {
		return err
	}
	if len(propostas) == 0 {
		fmt.Println("Nenhuma proposta registrada")
		return nil
	}

	for i := range propostas {
		p := &propostas[i]
		cliente := "?"
		if p.Cliente != nil {
			cliente = p.Cliente.Nome
		}
		modelo := "?"
		if p.Embarcacao != nil {
			modelo = p.Embarcacao.Modelo
		}
		fmt.Printf("%4d  %-10s  %-20s  %-28s  %s\n", p.ID, p.StatusDisplay(), cliente, modelo, p.Descricao)
		if p.Resposta != "" {
			fmt.Printf("      Resposta: %s\n", p.Resposta)
		}
		if p.ValorNegociado > 0 {
			fmt.Printf("      Valor negociado: R$ %.2f\n", p.ValorNegociado)
		}
	}
	return nil
}

func (c *CLI) handleAdminResponder(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("uso: admin responder <id> <texto>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}

	texto := strings.Join(args[1:], " ")
	if err := c.Propostas.Responde(context.Background(), id, texto); err != nil {
		return err
	}
	fmt.Println("Resposta registrada com sucesso!")
	return nil
}

func (c *CLI) handleAdminAceitar(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("uso: admin aceitar <id> <valor>")
	}
	proposta, err := c.adminProposta(args[0])
	if err != nil {
		return err
	}
	valor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("valor inválido: %s", args[1])
	}

	if err := c.Propostas.Aceita(context.Background(), proposta, valor); err != nil {
		return err
	}
	fmt.Println("Proposta aceita!")
	return nil
}

func (c *CLI) handleAdminRejeitar(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: admin rejeitar <id>")
	}
	proposta, err := c.adminProposta(args[0])
	if err != nil {
		return err
	}

	if err := c.Propostas.Rejeita(context.Background(), proposta); err != nil {
		return err
	}
	fmt.Println("Proposta rejeitada")
	return nil
}

func (c *CLI) handleAdminExcluirProposta(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: admin excluir-proposta <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}

	if !c.confirm(fmt.Sprintf("Excluir a proposta %d?", id)) {
		fmt.Println("Exclusão cancelada")
		return nil
	}

	if err := c.Propostas.Exclui(context.Background(), id); err != nil {
		return err
	}
	fmt.Println("Proposta excluída com sucesso!")
	return nil
}

func (c *CLI) handleDashboard(args []string) error {
	gerais, err := c.Admins.DashboardGerais(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Clientes:    %d\n", gerais.Clientes)
	fmt.Printf("Embarcações: %d\n", gerais.Embarcacoes)
	fmt.Printf("Propostas:   %d\n", gerais.Propostas)

	if marcas, err := c.Admins.EmbarcacoesMarca(context.Background()); err == nil && len(marcas) > 0 {
		fmt.Println("Embarcações por marca:")
		for _, m := range marcas {
			fmt.Printf("  %-20s %d\n", m.Marca, m.Num)
		}
	}
	if cidades, err := c.Admins.ClientesCidade(context.Background()); err == nil && len(cidades) > 0 {
		fmt.Println("Clientes por cidade:")
		for _, cd := range cidades {
			fmt.Printf("  %-20s %d\n", cd.Cidade, cd.Num)
		}
	}
	return nil
}

// adminProposta finds a proposal by ID in the moderation listing
func (c *CLI) adminProposta(rawID string) (domain.Proposta, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return domain.Proposta{}, fmt.Errorf("id inválido: %s", rawID)
	}

	propostas, err := c.Propostas.Todas(context.Background())
	if err != nil {
		return domain.Proposta{}, err
	}
	for i := range propostas {
		if propostas[i].ID == id {
			return propostas[i], nil
		}
	}
	return domain.Proposta{}, fmt.Errorf("proposta %d não encontrada", id)
}

// parseEmbarcacaoArgs reads <modelo> <ano> <preco> <marcaId> [motor]
func parseEmbarcacaoArgs(args []string) (services.EmbarcacaoInput, error) {
	if len(args) < 4 {
		return services.EmbarcacaoInput{}, fmt.Errorf("argumentos insuficientes")
	}

	ano, err := strconv.Atoi(args[1])
	if err != nil {
		return services.EmbarcacaoInput{}, fmt.Errorf("ano inválido: %s", args[1])
	}
	preco, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return services.EmbarcacaoInput{}, fmt.Errorf("preço inválido: %s", args[2])
	}
	marcaID, err := strconv.Atoi(args[3])
	if err != nil {
		return services.EmbarcacaoInput{}, fmt.Errorf("marca inválida: %s", args[3])
	}

	input := services.EmbarcacaoInput{
		Modelo:  args[0],
		Ano:     ano,
		Preco:   preco,
		MarcaID: marcaID,
	}
	if len(args) > 4 {
		input.Motor = strings.Join(args[4:], " ")
	}
	return input, nil
}
