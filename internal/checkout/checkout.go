// Package checkout implémente le tunnel de commande en trois étapes :
// livraison → paiement → confirmation. Le parcours est linéaire, sans
// saut ni retour après confirmation ; quitter puis revenir repart de
// l'étape livraison.
package checkout

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"lumiere_back_end/internal/models"
	"lumiere_back_end/internal/services"
	"lumiere_back_end/internal/stores"
)

type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var (
	// ErrNoSelection : aucune ligne sélectionnée, on n'entre pas dans le tunnel
	ErrNoSelection = errors.New("aucun article sélectionné dans le panier")
	// ErrWrongStep : l'opération ne correspond pas à l'étape courante
	ErrWrongStep = errors.New("étape de commande invalide")
	// ErrMissingFields : un champ obligatoire du formulaire est vide
	ErrMissingFields = errors.New("champs obligatoires manquants")
	// ErrAlreadyProcessing : une soumission de paiement est déjà en cours
	ErrAlreadyProcessing = errors.New("paiement déjà en cours de traitement")
)

// Flow pilote une session de passage en caisse au-dessus du panier et
// de l'API commandes
type Flow struct {
	cart  *stores.CartStore
	api   *services.API
	delay time.Duration
	hook  func(models.Order)

	mu          sync.Mutex
	step        Step
	shipping    models.Address
	orderNumber string
	inFlight    chan struct{} // garde single-flight sur la soumission
}

type Option func(*Flow)

// WithPaymentDelay règle la latence simulée du paiement (0 en test)
func WithPaymentDelay(d time.Duration) Option {
	return func(f *Flow) { f.delay = d }
}

// WithOrderHook enregistre un rappel invoqué après chaque commande
// créée (envoi d'email de confirmation, notifications…)
func WithOrderHook(hook func(models.Order)) Option {
	return func(f *Flow) { f.hook = hook }
}

func NewFlow(cart *stores.CartStore, api *services.API, opts ...Option) *Flow {
	f := &Flow{
		cart:     cart,
		api:      api,
		delay:    2 * time.Second,
		step:     StepShipping,
		inFlight: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Begin (re)démarre le tunnel à l'étape livraison. Si aucune ligne
// n'est sélectionnée, le tunnel refuse l'entrée et l'appelant doit
// rediriger l'utilisateur vers le panier.
func (f *Flow) Begin() error {
	if len(f.cart.SelectedItems()) == 0 {
		return ErrNoSelection
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepShipping
	f.shipping = models.Address{}
	f.orderNumber = ""
	return nil
}

// Step retourne l'étape courante
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// OrderNumber retourne le numéro de la commande confirmée, vide avant
func (f *Flow) OrderNumber() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderNumber
}

// SubmitShipping valide le formulaire de livraison (présence des
// champs uniquement, aucune vérification postale) et passe au paiement
func (f *Flow) SubmitShipping(address models.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepShipping {
		return ErrWrongStep
	}
	if address.FirstName == "" || address.LastName == "" || address.Email == "" ||
		address.Phone == "" || address.Address1 == "" || address.City == "" ||
		address.PostalCode == "" || address.Country == "" {
		return ErrMissingFields
	}
	f.shipping = address
	f.step = StepPayment
	return nil
}

// SubmitPayment traite le paiement simulé puis crée la commande.
// Garde single-flight : une deuxième soumission pendant le traitement
// est rejetée au lieu de créer une commande en double.
//
// La commande fige les lignes sélectionnées et leurs totaux, puis le
// panier est vidé EN ENTIER — y compris les lignes non sélectionnées,
// à l'identique de la boutique d'origine.
func (f *Flow) SubmitPayment(ctx context.Context, payment models.PaymentMethod) (*models.Order, error) {
	f.mu.Lock()
	if f.step != StepPayment {
		f.mu.Unlock()
		return nil, ErrWrongStep
	}
	shipping := f.shipping
	f.mu.Unlock()

	select {
	case f.inFlight <- struct{}{}:
	default:
		return nil, ErrAlreadyProcessing
	}
	defer func() { <-f.inFlight }()

	selected := f.cart.SelectedItems()
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	// Latence simulée du processeur de paiement
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	items := make([]models.OrderItem, 0, len(selected))
	subtotal := 0.0
	for _, line := range selected {
		items = append(items, models.OrderItem{
			Product:  line.Product,
			Quantity: line.Quantity,
			Price:    line.Product.Price,
			Total:    line.Product.Price * float64(line.Quantity),
		})
		subtotal += line.Product.Price * float64(line.Quantity)
	}

	order := f.api.CreateOrder(ctx, models.Order{
		Items:           items,
		ShippingAddress: shipping,
		BillingAddress:  shipping,
		PaymentMethod:   payment,
		Subtotal:        subtotal,
		Shipping:        stores.ShippingFor(subtotal),
		Tax:             stores.TaxFor(subtotal),
		Discount:        0,
		Total:           stores.TotalFor(subtotal),
	})

	f.cart.Clear()

	f.mu.Lock()
	f.orderNumber = order.OrderNumber
	f.step = StepConfirmation
	f.mu.Unlock()

	log.Printf("✅ Commande confirmée: %s", order.OrderNumber)

	if f.hook != nil {
		go f.hook(order)
	}
	return &order, nil
}
