package transaction_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
)

const sampleOFX = `OFXHEADER:100
DATA:OFXSGML

<OFX>
<BANKMSGSRSV1>
<STMTTRNRS>
<STMTRS>
<BANKTRANLIST>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[-3:BRT]
<TRNAMT>-150.50
<FITID>abc123
<MEMO>Supermercado Pão de Açúcar
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240105
<TRNAMT>5000.00
<FITID>abc124
<NAME>Salário
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120
<TRNAMT>-42,90
<FITID>abc125
</STMTTRN>
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

func TestParseOFX(t *testing.T) {
	t.Parallel()

	transactions, err := transaction.ParseOFX(strings.NewReader(sampleOFX))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(transactions))
	}

	first := transactions[0]
	if first.Type != transaction.Expense || first.Amount != 150.50 {
		t.Fatalf("TRNAMT negativo deveria virar despesa em módulo: %+v", first)
	}
	if first.Description != "Supermercado Pão de Açúcar" {
		t.Fatalf("MEMO deveria preencher a descrição: %+v", first)
	}
	if !first.Date.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("data com hora e fuso deveria preservar apenas a data: %v", first.Date)
	}

	second := transactions[1]
	if second.Type != transaction.Income || second.Amount != 5000 {
		t.Fatalf("TRNAMT positivo deveria virar receita: %+v", second)
	}
	if second.Description != "Salário" {
		t.Fatalf("NAME deveria preencher a descrição na ausência de MEMO: %+v", second)
	}

	third := transactions[2]
	if third.Amount != 42.90 {
		t.Fatalf("valor com vírgula decimal deveria ser aceito: %+v", third)
	}
	if third.Description != "Transação importada" {
		t.Fatalf("descrição ausente deveria receber o padrão: %+v", third)
	}
}

func TestParseOFXInvalidAmount(t *testing.T) {
	t.Parallel()

	input := "<STMTTRN>\n<TRNAMT>abc\n</STMTTRN>\n"
	_, err := transaction.ParseOFX(strings.NewReader(input))
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestParseOFXWithoutTransactions(t *testing.T) {
	t.Parallel()

	transactions, err := transaction.ParseOFX(strings.NewReader("<OFX>\n</OFX>\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 0 {
		t.Fatalf("expected no transactions, got %d", len(transactions))
	}
}
