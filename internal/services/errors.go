package services

import "errors"

// Domain errors. The messages are part of the HTTP contract and are returned
// to clients verbatim; handlers only decide the status code.
var (
	ErrSignUpFields       = errors.New("Email, username et password sont requis")
	ErrSignInFields       = errors.New("Email et password sont requis")
	ErrEmailTaken         = errors.New("Email déjà utilisé")
	ErrInvalidCredentials = errors.New("Email ou mot de passe incorrect")
	ErrUserNotFound       = errors.New("Utilisateur non trouvé")

	ErrDeckNameRequired = errors.New("Un nom de deck valide est requis")
	ErrDeckSize         = errors.New("Le deck doit contenir exactement 10 cartes")
	ErrCardIDsPositive  = errors.New("Les IDs des cartes doivent être positifs")
	ErrUnknownCards     = errors.New("Certaines cartes sont invalides ou manquantes")
	ErrDeckNotFound     = errors.New("Deck non trouvé")
	ErrDeckForbidden    = errors.New("Vous n'avez pas accès à ce deck")
)
