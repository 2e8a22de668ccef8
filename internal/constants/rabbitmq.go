package constants

const (
	ListingsExchange     = "idx.listings"
	ListingsExchangeType = "direct"

	ListingIngestQueue = "listing.ingest.events"

	RoutingKeyListingIngested = "listing.ingested"
)
