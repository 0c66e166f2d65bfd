package cli

import (
	"fmt"
	"io"
	"strings"

	"nautica-prime/internal/core/services"

	"github.com/chzyer/readline"
)

const prompt = "nautica> "

// CLI is the interactive shell over the marketplace API
type CLI struct {
	RL        *readline.Instance
	Catalog   *services.CatalogService
	Clientes  *services.ClienteService
	Propostas *services.PropostaService
	Admins    *services.AdminService
}

// NewCLI creates a new interactive shell
func NewCLI(
	rl *readline.Instance,
	catalog *services.CatalogService,
	clientes *services.ClienteService,
	propostas *services.PropostaService,
	admins *services.AdminService,
) *CLI {
	return &CLI{
		RL:        rl,
		Catalog:   catalog,
		Clientes:  clientes,
		Propostas: propostas,
		Admins:    admins,
	}
}

// Run reads and executes a single command line
func (c *CLI) Run() error {
	line, err := c.RL.Readline()
	if err == readline.ErrInterrupt {
		return err
	} else if err == io.EOF {
		return err
	} else if err != nil {
		return err
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	args := c.ParseArgs(line)
	return c.ExecuteCommand(args)
}

// ParseArgs splits a command line, honoring double quotes
func (c *CLI) ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if currentArg.Len() > 0 {
					args = append(args, currentArg.String())
					currentArg.Reset()
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}

	return args
}

// ExecuteCommand dispatches a parsed command
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("nenhum comando informado")
	}

	switch args[0] {
	case "destaques":
		return c.handleDestaques(args[1:])
	case "buscar":
		return c.handleBuscar(args[1:])
	case "embarcacoes":
		return c.handleEmbarcacoes(args[1:])
	case "detalhes":
		return c.handleDetalhes(args[1:])
	case "marcas":
		return c.handleMarcas(args[1:])
	case "cadastro":
		return c.handleCadastro(args[1:])
	case "login":
		return c.handleLogin(args[1:])
	case "logout":
		return c.handleLogout(args[1:])
	case "quem":
		return c.handleQuem(args[1:])
	case "proposta":
		return c.handleProposta(args[1:])
	case "minhas":
		return c.handleMinhas(args[1:])
	case "admin":
		return c.handleAdmin(args[1:])
	case "dashboard":
		return c.handleDashboard(args[1:])
	case "help", "ajuda":
		c.printHelp()
		return nil
	case "exit", "quit", "sair":
		fmt.Println("Saindo...")
		if err := c.RL.Close(); err != nil {
			fmt.Printf("Erro ao fechar o terminal: %v\n", err)
		}
		return fmt.Errorf("exit requested: %w", io.EOF)
	default:
		return fmt.Errorf("comando desconhecido: %s", args[0])
	}
}

// confirm asks a yes/no question, defaulting to no
func (c *CLI) confirm(question string) bool {
	c.RL.SetPrompt(question + " (s/N) ")
	defer c.RL.SetPrompt(prompt)

	line, err := c.RL.Readline()
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "s" || answer == "sim"
}

// readPassword prompts for a password without echoing it
func (c *CLI) readPassword(label string) (string, error) {
	senha, err := c.RL.ReadPassword(label)
	if err != nil {
		return "", err
	}
	return string(senha), nil
}

func (c *CLI) printHelp() {
	fmt.Println("Comandos disponíveis:")
	fmt.Println("  destaques                          lista as embarcações em destaque")
	fmt.Println("  buscar <termo>                     pesquisa por modelo, marca, ano ou preço máximo")
	fmt.Println("  embarcacoes                        lista todo o catálogo")
	fmt.Println("  detalhes <id>                      mostra uma embarcação")
	fmt.Println("  marcas                             lista as marcas")
	fmt.Println("  cadastro <nome> <email> <cidade>   cria uma conta de cliente")
	fmt.Println("  login <email>                      entra como cliente")
	fmt.Println("  logout                             sai da conta de cliente")
	fmt.Println("  quem                               mostra as sessões ativas")
	fmt.Println("  proposta <id> <descricao>          envia uma proposta para a embarcação")
	fmt.Println("  minhas                             lista suas propostas")
	fmt.Println("  dashboard                          mostra o painel de totais")
	fmt.Println("  admin <subcomando>                 comandos administrativos (admin help)")
	fmt.Println("  sair                               encerra o programa")
}

func (c *CLI) printAdminHelp() {
	fmt.Println("Subcomandos de admin:")
	fmt.Println("  admin login <email>                        entra como administrador")
	fmt.Println("  admin logout                               sai da conta de administrador")
	fmt.Println("  admin existe                               verifica se há administrador cadastrado")
	fmt.Println("  admin primeiro-acesso <nome> <email>       cria o primeiro administrador")
	fmt.Println("  admin clientes                             lista os clientes")
	fmt.Println("  admin nova <modelo> <ano> <preco> <marcaId> [motor]")
	fmt.Println("  admin editar <id> <modelo> <ano> <preco> <marcaId> [motor]")
	fmt.Println("  admin excluir <id>                         exclui uma embarcação")
	fmt.Println("  admin propostas                            lista todas as propostas")
	fmt.Println("  admin responder <id> <texto>               responde uma proposta")
	fmt.Println("  admin aceitar <id> <valor>                 aceita uma proposta")
	fmt.Println("  admin rejeitar <id>                        rejeita uma proposta")
	fmt.Println("  admin excluir-proposta <id>                exclui uma proposta")
}
