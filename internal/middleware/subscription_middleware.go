package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platewise/platewise-backend/internal/app/service"
	"github.com/platewise/platewise-backend/internal/errors"
)

// SubscriptionMiddleware gates privileged tenant routes on a live
// subscription check. It runs after Authenticate.
type SubscriptionMiddleware struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionMiddleware(subscriptionService service.SubscriptionService) *SubscriptionMiddleware {
	return &SubscriptionMiddleware{
		subscriptionService: subscriptionService,
	}
}

// RequireActiveSubscription denies the request unless the caller's restaurant
// has a currently valid subscription. The check hits the store on every
// request - a cached verdict could outlive a lapsed subscription.
func (m *SubscriptionMiddleware) RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		restaurantID, ok := GetRestaurantID(c)
		if !ok {
			log.Warn("Subscription check without restaurant in token", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusForbidden, errors.RestaurantRequired,
				"No restaurant is associated with your account. Refresh your session if you were recently approved")
			c.Abort()
			return
		}

		if err := m.subscriptionService.Authorize(restaurantID); err != nil {
			switch err {
			case service.ErrNoSubscription:
				errors.RespondWithError(c, http.StatusPaymentRequired, errors.SubscriptionRequired,
					"An active subscription is required")
			case service.ErrSubscriptionExpired:
				errors.RespondWithError(c, http.StatusPaymentRequired, errors.SubscriptionExpired,
					"Your subscription has expired. Renew to regain access")
			default:
				log.Error("Subscription authorization failed", err, map[string]interface{}{
					"restaurant_id": restaurantID,
				})
				errors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
