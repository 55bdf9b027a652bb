// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package auth guards the admin endpoints with HS256 bearer tokens.

Recommendation endpoints are public. Only /api/v1/admin/* (artifact
listing, snapshot reload) requires a token whose role claim is "admin".

Key Components:

  - JWTManager: token signing and validation (golang-jwt/jwt/v5), HMAC only
  - Guard: chi middleware checking the Authorization header, writing the
    JSON error envelope on failure and recording every decision in the
    admin audit log

Tokens are minted offline by operators:

	animerec -issue-token ops@example.org

With AUTH_MODE=none the guard admits every request; configuration
validation refuses that mode in production.
*/
package auth
