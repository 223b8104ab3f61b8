package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"food-ordering/order-svc/internal/domain"
)

// Plain-text renderings match the screens of the desktop client.

const dateLayout = "02/01/2006 15:04"

func wantsText(r *http.Request) bool {
	return r.URL.Query().Get("format") == "text"
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func renderDraft(order *domain.Order) string {
	var b strings.Builder
	for _, line := range order.Lines() {
		fmt.Fprintf(&b, "%dx %s (R$ %s)\n", line.Quantity, line.Food.Name, line.Food.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: R$ %s\n", order.Total().StringFixed(2))
	return b.String()
}

func renderOrders(orders []domain.OrderSummary) string {
	if len(orders) == 0 {
		return "(Nenhum pedido encontrado para este usuário)\n"
	}

	var b strings.Builder
	for _, order := range orders {
		rating := "N/A"
		if value, ok := order.Rating.Get(); ok {
			rating = fmt.Sprint(value)
		}
		date := "N/A"
		if !order.CreatedAt.IsZero() {
			date = order.CreatedAt.Format(dateLayout)
		}

		b.WriteString("\n------------------------------------------\n")
		fmt.Fprintf(&b, "Pedido ID: %d | Data: %s | Avaliação: %s\n", order.ID, date, rating)
		b.WriteString("Itens:\n")
		if len(order.Items) == 0 {
			b.WriteString("  (Nenhum item encontrado)\n")
			continue
		}
		for _, item := range order.Items {
			fmt.Fprintf(&b, "  - ID %d: %dx %s\n", item.FoodID, item.Quantity, item.Name)
		}
	}
	return b.String()
}

func renderFoodDetail(detail *domain.FoodDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", detail.Name)
	fmt.Fprintf(&b, "Descrição: %s\n", detail.Description.OrElse("N/A"))
	fmt.Fprintf(&b, "Preço: R$ %s\n", detail.Price.StringFixed(2))
	fmt.Fprintf(&b, "Tipo: %s\n", detail.Kind)
	if tax, ok := detail.DisplayTax(); ok {
		fmt.Fprintf(&b, "Imposto (aprox): %s%%\n", tax.StringFixed(1))
	}
	fmt.Fprintf(&b, "Estabelecimento: %s\n", detail.EstablishmentName)
	return b.String()
}
