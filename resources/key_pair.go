package resources

//counterfeiter:generate . KeyPairDriver
type KeyPairDriver interface {
	Create(KeyPairDriverConfig) (KeyPair, error)
	Delete(KeyPair) error
}

// KeyPair is a provider generated key pair. Material holds the PEM encoded
// private key and is only populated on creation.
type KeyPair struct {
	Name     string
	Material []byte
}

type KeyPairDriverConfig struct {
	Name string
	Tags map[string]string
}
