package ovh

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"watchdog/internal/registrar/providers"
	"watchdog/internal/watch/models"
)

const (
	cartDescription       = "Domain Watchdog"
	defaultPricingMode    = "create-default"
	registrationDuration  = "P1Y"
	labelAcceptConditions = "ACCEPT_CONDITIONS"
	labelOwnerLegalAge    = "OWNER_LEGAL_AGE"
)

type offer struct {
	Action      string `json:"action"`
	Orderable   bool   `json:"orderable"`
	PricingMode string `json:"pricingMode"`
}

type cart struct {
	CartID string `json:"cartId"`
}

type cartItem struct {
	ItemID int64 `json:"itemId"`
}

type configuration struct {
	CartID string `json:"cartId"`
	ItemID int64  `json:"itemId"`
	Label  string `json:"label"`
	Value  string `json:"value"`
}

type checkout struct {
	AutoPayWithPreferredPaymentMethod bool `json:"autoPayWithPreferredPaymentMethod"`
	WaiveRetractationPeriod           bool `json:"waiveRetractationPeriod"`
}

// Order runs the cart workflow. A dry run stops after the checkout summary,
// leaving the cart to expire on the OVH side. A fresh cart is created on each
// call, so a failed order is not resumed by calling again.
func (p *Provider) Order(ctx context.Context, domain *models.Domain, authData providers.CredentialBag, dryRun bool) error {
	if err := providers.CheckOrderable(Name, domain); err != nil {
		return err
	}

	creds, err := p.Verify(ctx, authData)
	if err != nil {
		return err
	}
	client, err := p.client(creds)
	if err != nil {
		return err
	}

	subsidiary, _ := creds.String(FieldOvhSubsidiary)
	pricingMode, _ := creds.String(FieldPricingMode)
	ldhName := domain.LDHName

	var c cart
	if err := client.PostWithContext(ctx, "/order/cart", map[string]string{
		"ovhSubsidiary": subsidiary,
		"description":   cartDescription,
	}, &c); err != nil {
		return classify(err)
	}
	cartPath := "/order/cart/" + url.PathEscape(c.CartID)

	var offers []offer
	if err := client.GetWithContext(ctx, cartPath+"/domain?"+url.Values{"domain": {ldhName}}.Encode(), &offers); err != nil {
		return classify(err)
	}
	if !hasOrderableOffer(offers, pricingMode) {
		if err := client.DeleteWithContext(ctx, cartPath, nil); err != nil {
			p.logger.WarnContext(ctx, "failed to delete ovh cart", "cart_id", c.CartID, "error", err)
		}
		return providers.NewError(providers.ErrorNoOffer, Name, "Cannot buy this domain name", nil)
	}

	var item cartItem
	if err := client.PostWithContext(ctx, cartPath+"/domain", map[string]string{
		"domain":   ldhName,
		"duration": registrationDuration,
	}, &item); err != nil {
		return classify(err)
	}
	itemPath := cartPath + "/item/" + strconv.FormatInt(item.ItemID, 10)

	if err := client.PostWithContext(ctx, cartPath+"/assign", nil, nil); err != nil {
		return classify(err)
	}
	if err := client.GetWithContext(ctx, itemPath+"/requiredConfiguration", nil); err != nil {
		return classify(err)
	}

	for _, label := range []string{labelAcceptConditions, labelOwnerLegalAge} {
		field := providers.FieldAcceptConditions
		if label == labelOwnerLegalAge {
			field = providers.FieldOwnerLegalAge
		}
		if err := client.PostWithContext(ctx, itemPath+"/configuration", configuration{
			CartID: c.CartID,
			ItemID: item.ItemID,
			Label:  label,
			Value:  fmt.Sprint(creds[field]),
		}, nil); err != nil {
			return classify(err)
		}
	}

	if err := client.GetWithContext(ctx, cartPath+"/checkout", nil); err != nil {
		return classify(err)
	}

	if dryRun {
		p.logger.InfoContext(ctx, "ovh dry run completed", "ldh_name", ldhName, "cart_id", c.CartID)
		return nil
	}

	waive, _ := creds[providers.FieldWaiveRetractationPeriod].(bool)
	if err := client.PostWithContext(ctx, cartPath+"/checkout", checkout{
		AutoPayWithPreferredPaymentMethod: true,
		WaiveRetractationPeriod:           waive,
	}, nil); err != nil {
		return rejectOrder(err)
	}

	p.logger.InfoContext(ctx, "ovh order placed", "ldh_name", ldhName, "cart_id", c.CartID)
	return nil
}

// hasOrderableOffer reports whether a creation offer is orderable in the
// default pricing mode or the one configured on the credential.
func hasOrderableOffer(offers []offer, pricingMode string) bool {
	modes := []string{defaultPricingMode}
	if pricingMode != defaultPricingMode {
		modes = append(modes, pricingMode)
	}
	for _, o := range offers {
		if o.Action == "create" && o.Orderable && slices.Contains(modes, o.PricingMode) {
			return true
		}
	}
	return false
}
