package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/core/services"
)

func (c *CLI) handleCadastro(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("uso: cadastro <nome> <email> <cidade>")
	}

	senha, err := c.readPassword("Senha: ")
	if err != nil {
		return err
	}
	confirma, err := c.readPassword("Confirme a senha: ")
	if err != nil {
		return err
	}

	input := services.CadastroInput{
		Nome:   args[0],
		Email:  args[1],
		Cidade: strings.Join(args[2:], " "),
		Senha:  senha,
	}
	if err := c.Clientes.Cadastra(context.Background(), input, confirma); err != nil {
		return err
	}

	fmt.Println("Cadastro realizado com sucesso! Use 'login' para entrar.")
	return nil
}

func (c *CLI) handleLogin(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: login <email>")
	}

	senha, err := c.readPassword("Senha: ")
	if err != nil {
		return err
	}

	cliente, err := c.Clientes.Login(context.Background(), args[0], senha)
	if err != nil {
		return err
	}

	fmt.Printf("Bem-vindo(a), %s!\n", cliente.Nome)
	return nil
}

func (c *CLI) handleLogout(args []string) error {
	if err := c.Clientes.Logout(); err != nil {
		return err
	}
	fmt.Println("Sessão de cliente encerrada")
	return nil
}

func (c *CLI) handleQuem(args []string) error {
	cliente := c.Clientes.Atual()
	if cliente.Autenticado() {
		fmt.Printf("Cliente: %s <%s>\n", cliente.Nome, cliente.Email)
	} else {
		fmt.Println("Cliente: não autenticado")
	}

	admin := c.Admins.Atual()
	if admin.Autenticado() {
		fmt.Printf("Admin:   %s <%s> (nível %d)\n", admin.Nome, admin.Email, admin.Nivel)
	} else {
		fmt.Println("Admin:   não autenticado")
	}
	return nil
}

func (c *CLI) handleProposta(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("uso: proposta <embarcacaoId> <descricao>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	descricao := strings.Join(args[1:], " ")

	if err := c.Propostas.Envia(context.Background(), id, descricao); err != nil {
		if errors.Is(err, domain.ErrEnvioEmAndamento) {
			fmt.Println("Aguarde, o envio anterior ainda está em andamento")
			return nil
		}
		return err
	}

	fmt.Println("Proposta enviada com sucesso!")
	return nil
}

func (c *CLI) handleMinhas(args []string) error {
	propostas, err := c.Propostas.Minhas(context.Background())
	if err != nil {
		return err
	}
	if len(propostas) == 0 {
		fmt.Println("Você ainda não enviou propostas")
		return nil
	}

	for i := range propostas {
		p := &propostas[i]
		modelo := "?"
		if p.Embarcacao != nil {
			modelo = p.Embarcacao.Modelo
		}
		fmt.Printf("%4d  %-10s  %-28s  %s\n", p.ID, p.StatusDisplay(), modelo, p.Descricao)
		if p.Resposta != "" {
			fmt.Printf("      Resposta: %s\n", p.Resposta)
		}
	}
	return nil
}
