// Package services содержит доменные сервисы конвейера регистрации.
package services

import (
	"crypto/sha1" // #nosec G505 - алгоритм задан протоколом range-запросов
	"encoding/hex"
	"strings"
)

// PrefixLength - длина префикса дайджеста, отправляемого серверу
// при k-анонимном range-запросе.
const PrefixLength = 5

// PasswordDigest вычисляет SHA-1 дайджест UTF-8 представления пароля
// в верхнем шестнадцатеричном регистре. SHA-1 выбран исключительно для
// совместимости с опубликованным протоколом сервиса проверки утечек.
func PasswordDigest(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// SplitDigest делит дайджест на префикс из PrefixLength символов
// и оставшийся суффикс. Сервер видит только префикс.
func SplitDigest(digest string) (prefix, suffix string) {
	return digest[:PrefixLength], digest[PrefixLength:]
}
