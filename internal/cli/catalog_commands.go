package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/pkg/foto"
)

func (c *CLI) handleDestaques(args []string) error {
	embarcacoes, err := c.Catalog.Destaques(context.Background())
	if err != nil {
		return err
	}
	c.printEmbarcacoes(embarcacoes)
	return nil
}

func (c *CLI) handleBuscar(args []string) error {
	termo := strings.Join(args, " ")
	embarcacoes, err := c.Catalog.Pesquisa(context.Background(), termo)
	if err != nil {
		return err
	}
	if len(embarcacoes) == 0 {
		fmt.Printf("Nenhuma embarcação encontrada para %q\n", termo)
		return nil
	}
	c.printEmbarcacoes(embarcacoes)
	return nil
}

func (c *CLI) handleEmbarcacoes(args []string) error {
	embarcacoes, err := c.Catalog.Todas(context.Background())
	if err != nil {
		return err
	}
	c.printEmbarcacoes(embarcacoes)
	return nil
}

func (c *CLI) handleDetalhes(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: detalhes <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}

	e, err := c.Catalog.Detalhes(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d)\n", e.Modelo, e.Ano)
	fmt.Printf("  Marca:      %s\n", e.MarcaNome())
	fmt.Printf("  Preço:      R$ %.2f\n", e.Preco)
	fmt.Printf("  Motor:      %s\n", e.Motor)
	fmt.Printf("  Horas:      %s\n", e.HorasUso())
	fmt.Printf("  Foto:       %s\n", foto.Resolve(e.Foto))
	if acessorios := e.ListaAcessorios(); len(acessorios) > 0 {
		fmt.Printf("  Acessórios: %s\n", strings.Join(acessorios, ", "))
	}
	if e.Vendida {
		fmt.Println("  VENDIDA")
	}
	return nil
}

func (c *CLI) handleMarcas(args []string) error {
	marcas, err := c.Catalog.Marcas(context.Background())
	if err != nil {
		return err
	}
	for _, m := range marcas {
		fmt.Printf("%4d  %s\n", m.ID, m.Nome)
	}
	return nil
}

func (c *CLI) printEmbarcacoes(embarcacoes []domain.Embarcacao) {
	if len(embarcacoes) == 0 {
		fmt.Println("Nenhuma embarcação encontrada")
		return
	}
	for i := range embarcacoes {
		e := &embarcacoes[i]
		marcador := " "
		if e.Vendida {
			marcador = "V"
		} else if e.Destaque {
			marcador = "*"
		}
		fmt.Printf("%4d %s %-32s %-18s %4d  R$ %.2f\n",
			e.ID, marcador, e.Modelo, e.MarcaNome(), e.Ano, e.Preco)
	}
}
