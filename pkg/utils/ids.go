package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// IDGenerator permite injetar geradores determinísticos nos testes
type IDGenerator func() string

// GenerateID gera um identificador curto para entidades
func GenerateID() string {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		// gonanoid só falha se o conjunto de caracteres for inválido
		panic(err)
	}
	return id
}
