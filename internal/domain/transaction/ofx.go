package transaction

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
)

// ParseOFX extrai as transações de um extrato OFX (SGML ou XML). Apenas os
// blocos STMTTRN são considerados; o sinal de TRNAMT define o tipo e o valor
// é armazenado em módulo.
func ParseOFX(r io.Reader) ([]*Transaction, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		transactions []*Transaction
		current      *Transaction
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "<STMTTRN>"):
			current = &Transaction{}
		case strings.HasPrefix(line, "</STMTTRN>"):
			if current != nil {
				transactions = append(transactions, current)
				current = nil
			}
		case current == nil:
			continue
		default:
			tag, value := splitOFXLine(line)
			if value == "" {
				continue
			}
			switch tag {
			case "TRNAMT":
				amount, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
				if err != nil {
					return nil, appErrors.NewValidationError("file", "valor inválido no arquivo OFX")
				}
				if amount < 0 {
					current.Type = Expense
					current.Amount = -amount
				} else {
					current.Type = Income
					current.Amount = amount
				}
			case "DTPOSTED":
				date, err := parseOFXDate(value)
				if err != nil {
					return nil, appErrors.NewValidationError("file", "data inválida no arquivo OFX")
				}
				current.Date = date
			case "MEMO":
				current.Description = value
			case "NAME":
				if current.Description == "" {
					current.Description = value
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, appErrors.NewValidationError("file", "não foi possível ler o arquivo OFX")
	}

	for _, transaction := range transactions {
		if transaction.Description == "" {
			transaction.Description = "Transação importada"
		}
	}

	return transactions, nil
}

// splitOFXLine separa "<TAG>valor" em tag e valor. Linhas XML com tag de
// fechamento na mesma linha também são aceitas.
func splitOFXLine(line string) (string, string) {
	if !strings.HasPrefix(line, "<") {
		return "", ""
	}
	end := strings.Index(line, ">")
	if end < 0 {
		return "", ""
	}
	tag := strings.ToUpper(line[1:end])
	value := line[end+1:]
	if close := strings.Index(value, "</"); close >= 0 {
		value = value[:close]
	}
	return tag, strings.TrimSpace(value)
}

// parseOFXDate aceita YYYYMMDD e YYYYMMDDHHMMSS, com ou sem sufixo de fuso
// como "[-3:BRT]". Apenas a parte de data é preservada.
func parseOFXDate(value string) (time.Time, error) {
	if idx := strings.Index(value, "["); idx >= 0 {
		value = value[:idx]
	}
	if len(value) > 8 {
		value = value[:8]
	}
	return time.Parse("20060102", value)
}
