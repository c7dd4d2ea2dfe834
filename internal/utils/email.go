package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"lumiere_back_end/internal/models"
)

// SendOrderConfirmationEmail envoie le récapitulatif de commande.
// Sans configuration SMTP, l'envoi est simplement ignoré (mode démo).
func SendOrderConfirmationEmail(order models.Order) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("📭 SMTP non configuré — email de confirmation %s ignoré", order.OrderNumber)
		return nil
	}

	to := order.ShippingAddress.Email

	msg := mail.NewMsg()
	if err := msg.From("noreply@lumiere-botanical.com"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Confirmation de votre commande " + order.OrderNumber)
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f MAD</td>
				<td>%.2f MAD</td>
			</tr>`, item.Product.Name, item.Quantity, item.Price, item.Total)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Merci pour votre commande %s</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande a bien été enregistrée et sera préparée avec soin.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left;">Produit</th>
					<th style="padding: 10px; text-align: left;">Quantité</th>
					<th style="padding: 10px; text-align: left;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p>Sous-total : %.2f MAD<br>
		Livraison : %.2f MAD<br>
		TVA : %.2f MAD<br>
		<strong>Total : %.2f MAD</strong></p>

		<p>L'équipe Lumière Botanical 🌿</p>
	</div>
</body>
</html>`,
		order.OrderNumber, order.ShippingAddress.FirstName, itemsHTML,
		order.Subtotal, order.Shipping, order.Tax, order.Total)
}
