package notification

import (
	"context"
	"fmt"

	"go-storefront/src/infrastructure/log"
	"go-storefront/src/services/order/domain"
)

// Sender is the delivery capability the dispatcher depends on. The service
// never talks to a concrete delivery mechanism directly.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// NotificationService selects a message template by transaction status and
// hands the rendered message to the configured Sender.
type NotificationService struct {
	logger log.Logger
	sender Sender
}

func NewNotificationService(logger log.Logger, sender Sender) *NotificationService {
	return &NotificationService{
		logger: logger,
		sender: sender,
	}
}

// Notify renders the status-specific message for the order and sends it to the
// customer's email address.
func (n *NotificationService) Notify(ctx context.Context, order domain.Order, itemName string) error {
	var subject, body string

	switch order.Status {
	case domain.StatusApproved:
		subject = "Order Confirmation: " + order.OrderNumber
		body = approvedBody(order, itemName)
	case domain.StatusDeclined:
		subject = "Transaction Declined: " + order.OrderNumber
		body = declinedBody(order)
	case domain.StatusError:
		subject = "Transaction Error: " + order.OrderNumber
		body = errorBody(order)
	default:
		n.logger.Warn(ctx, "Unknown transaction status for order "+order.ID+": "+string(order.Status))
		return nil
	}

	if err := n.sender.Send(ctx, order.Customer.Email, subject, body); err != nil {
		return fmt.Errorf("failed to deliver notification for order %s: %w", order.ID, err)
	}

	n.logger.InfoWithExtra(ctx, "Notification dispatched", map[string]any{
		"OrderID":     order.ID,
		"OrderNumber": order.OrderNumber,
		"Recipient":   order.Customer.Email,
		"Subject":     subject,
	})
	return nil
}

func approvedBody(order domain.Order, itemName string) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your purchase! Your order has been successfully processed.

Order Details
  Order Number: %s
  Date: %s

Product
  Item: %s
  Quantity: %d
  Price: $%s

Order Summary
  Subtotal: $%s
  Total: $%s

Shipping Information
  %s
  %s
  %s, %s %s
  Email: %s
  Phone: %s

If you have any questions about your order, please contact our customer support team.
Thank you for shopping with us!

This is a simulated transaction email for demonstration purposes only.`,
		order.Customer.FullName,
		order.OrderNumber,
		order.CreatedAt.Format("Jan 2, 2006 3:04:05 PM"),
		itemName,
		order.Quantity,
		order.UnitPrice().StringFixed(2),
		order.Subtotal.StringFixed(2),
		order.Total.StringFixed(2),
		order.Customer.FullName,
		order.Customer.Address,
		order.Customer.City, order.Customer.State, order.Customer.ZipCode,
		order.Customer.Email,
		order.Customer.Phone,
	)
}

func declinedBody(order domain.Order) string {
	return fmt.Sprintf(`Dear %s,

We regret to inform you that your recent transaction has been declined.

Transaction Details
  Order Number: %s
  Date: %s
  Status: Declined

This could be due to one of the following reasons:
  - Insufficient funds in your account
  - Card expiration date or CVV mismatch
  - Card issuer declined the transaction
  - Billing address verification failed

Please try again with a different payment method or contact your bank for more information.

This is a simulated transaction email for demonstration purposes only.`,
		order.Customer.FullName,
		order.OrderNumber,
		order.CreatedAt.Format("Jan 2, 2006 3:04:05 PM"),
	)
}

func errorBody(order domain.Order) string {
	return fmt.Sprintf(`Dear %s,

We encountered an unexpected error while processing your transaction.

Error Details
  Order Number: %s
  Date: %s
  Status: Processing Error

This issue is on our end, and no charges have been made to your account.
Our technical team has been notified and is working to resolve this issue.
Please try again later or contact our customer support for assistance.

This is a simulated transaction email for demonstration purposes only.`,
		order.Customer.FullName,
		order.OrderNumber,
		order.CreatedAt.Format("Jan 2, 2006 3:04:05 PM"),
	)
}
