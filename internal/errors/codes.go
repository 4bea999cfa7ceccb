package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The frontend maps these codes to localized messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // token expired
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // malformed or tampered token
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // token blacklisted after logout
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // duplicate email

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // no access
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // role missing from context
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // admin only
	AuthzOwnerOnly    = "AUTHZ_OWNER_ONLY"     // restaurant owner only

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // bad request body
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // bad path/query id
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required field

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // resource missing
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // duplicate
	ResourceConflict      = "RESOURCE_CONFLICT"       // conflicting state

	// ==================== Registration (REGISTRATION_) ====================
	RegistrationNotFound          = "REGISTRATION_NOT_FOUND"          // unknown request id
	RegistrationInvalidTransition = "REGISTRATION_INVALID_TRANSITION" // request already resolved
	RegistrationPending           = "REGISTRATION_PENDING"            // still under review

	// ==================== Subscription (SUBSCRIPTION_) ====================
	SubscriptionRequired        = "SUBSCRIPTION_REQUIRED"          // no subscription on record
	SubscriptionExpired         = "SUBSCRIPTION_EXPIRED"           // all subscriptions lapsed
	SubscriptionPackageNotFound = "SUBSCRIPTION_PACKAGE_NOT_FOUND" // unknown package

	// ==================== Restaurant (RESTAURANT_) ====================
	RestaurantNotFound = "RESTAURANT_NOT_FOUND" // restaurant missing
	RestaurantRequired = "RESTAURANT_REQUIRED"  // caller has no restaurant

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // wrong content type
	UploadFailed          = "UPLOAD_FAILED"            // presign/upload failure

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // unexpected failure
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // store unavailable
)
