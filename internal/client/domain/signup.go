package domain

// SignupRequest is a raw signup request. A nil Body means the request carried no body.
type SignupRequest struct {
	Body *SignupBody
}

// SignupBody holds the signup fields. A nil field was absent from the request;
// a non-nil field was present, even if empty.
type SignupBody struct {
	Name     *string
	Email    *string
	Password *string
	CPF      *string
	Address  *SignupAddress
}

// SignupAddress holds the nested address fields of a signup body.
type SignupAddress struct {
	Street  *string
	City    *string
	State   *string
	ZipCode *string
}

// SignupResponse is the HTTP-style envelope produced for every signup request.
// Exactly one of Errors or Client is set.
type SignupResponse struct {
	StatusCode int
	Errors     []string
	Client     *Client
}
