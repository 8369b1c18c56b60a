package audit

import (
	"encoding/json"
	"fmt"

	"ponto/payroll"
)

const promptTemplate = `Faça uma comparação dos registros de marcação de ponto abaixo com o holerite em PDF anexado.
Registros do banco (JSON): %s

Verifique se as horas registradas conferem com as horas pagas no holerite, considerando o salário base e os adicionais legais (CLT brasileira).
Gere um relatório detalhado apontando quaisquer divergências encontradas e termine com um resumo indicando se está tudo OK ou se há discrepâncias a corrigir.
Considere que o holerite fecha as horas extras no dia %d de cada mês.`

// BuildPrompt embeds the records as JSON in the audit instructions.
func BuildPrompt(records []payroll.AuditRecord) (string, error) {
	if records == nil {
		records = []payroll.AuditRecord{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode audit records: %w", err)
	}
	return fmt.Sprintf(promptTemplate, payload, payroll.CycleClosingDay), nil
}
