package wsclient

// GraphQL documents for the four operations the exporter issues. The activity
// fragment requests every field the classifier can consume; absent fields come
// back null.

const activityFragment = `
fragment Activity on ActivityFeedItem {
  accountId
  externalCanonicalId
  amount
  amountSign
  occurredAt
  type
  subType
  eTransferEmail
  eTransferName
  assetSymbol
  assetQuantity
  aftOriginatorName
  aftTransactionCategory
  aftTransactionType
  canonicalId
  currency
  identityId
  institutionName
  p2pHandle
  p2pMessage
  spendMerchant
  securityId
  billPayCompanyName
  billPayPayeeNickname
  redactedExternalAccountNumber
  opposingAccountId
  status
  strikePrice
  contractType
  expiryDate
  chequeNumber
  provisionalCreditAmount
  primaryBlocker
  interestRate
  frequency
  counterAssetSymbol
  rewardProgram
  counterPartyCurrency
  counterPartyCurrencyAmount
  counterPartyName
  fxRate
  fees
  reference
}
`

const activityListQuery = `
query FetchActivityList(
  $first: Int!
  $cursor: Cursor
  $accountIds: [String!]
  $types: [ActivityFeedItemType!]
  $subTypes: [ActivityFeedItemSubType!]
  $endDate: Datetime
  $securityIds: [String]
  $startDate: Datetime
  $legacyStatuses: [String]
) {
  activities(
    first: $first
    after: $cursor
    accountIds: $accountIds
    types: $types
    subTypes: $subTypes
    endDate: $endDate
    securityIds: $securityIds
    startDate: $startDate
    legacyStatuses: $legacyStatuses
  ) {
    edges {
      node {
        ...Activity
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
` + activityFragment

const activityFeedItemsQuery = `
query FetchActivityFeedItems(
  $first: Int
  $cursor: Cursor
  $condition: ActivityCondition
  $orderBy: [ActivitiesOrderBy!] = OCCURRED_AT_DESC
) {
  activityFeedItems(
    first: $first
    after: $cursor
    condition: $condition
    orderBy: $orderBy
  ) {
    edges {
      node {
        ...Activity
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
` + activityFragment

const accountFinancialsQuery = `
query FetchAllAccountFinancials(
  $identityId: ID!
  $pageSize: Int = 25
  $cursor: String
) {
  identity(id: $identityId) {
    id
    accounts(filter: {}, first: $pageSize, after: $cursor) {
      pageInfo {
        hasNextPage
        endCursor
      }
      edges {
        cursor
        node {
          ...Account
        }
      }
    }
  }
}

fragment Account on Account {
  id
  unifiedAccountType
  nickname
}
`

const fundsTransferQuery = `
query FetchFundsTransfer($id: ID!) {
  fundsTransfer: funds_transfer(id: $id, include_cancelled: true) {
    id
    status
    source {
      ...BankAccountOwner
    }
    destination {
      ...BankAccountOwner
    }
  }
}

fragment BankAccountOwner on BankAccountOwner {
  bankAccount: bank_account {
    id
    institutionName: institution_name
    nickname
    ...CaBankAccount
    ...UsBankAccount
  }
}

fragment CaBankAccount on CaBankAccount {
  accountName: account_name
  accountNumber: account_number
}

fragment UsBankAccount on UsBankAccount {
  accountName: account_name
  accountNumber: account_number
}
`
