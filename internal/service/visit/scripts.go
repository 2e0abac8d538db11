package visit

const (
	noScheduleScript = `Hello, this is Rosella, I am calling from Independence Care, how are you doing today?

I see you clocked in but there seems to be no schedule on your Calendar, can you confirm the client you are working with today?

[Wait for response]

No, please do not leave. Unfortunately, the app can malfunction at times and remove Caregivers from schedules. I will add you to the schedule and clock you in, if for any reason this causes an error your coordinator will reach out to you to clarify.`

	phoneNotFoundScript = `Hello, this is Rosella, I am calling from Independence Care, how are you doing today!

I have noticed that you have clocked in using a phone number that is not registered with us. Can you confirm whose number this is? (%s)

[Wait for confirmation]

Okay, can your client confirm that?

[Get client on phone for verification]`

	wrongPhoneScript = `Hello, this is Rosella, I am calling from Independence Care, how are you doing today!

I have noticed that you clocked in using %s, which is registered to %s, but your visit today is with %s. Can you confirm where you are right now?

[Wait for confirmation]

Please clock in again from your client's registered phone so we can accept this visit.`

	clockInOutOfRangeScript = `Hello, this is Rosella, I am calling from Independence Care, how are you doing today!

I have noticed you have clocked in outside of the client's service area, which is not close to your client's house. Can you please clock in again once you are at your client's house, because we are not able to accept this clock in.

[Listen for explanation]

Remember it is state law that a Home Care agency cannot bill for visits that are rendered outside of the client's home.`

	outOfWindowScript = `Hello, this is Rosella, I am calling from Independence Care, how are you doing today!

I have noticed that you clocked in late for your shift today, I just wanted to confirm what was the reason for that?

[Listen for reason]

Would you be willing to make up for the hours you missed today by staying late on your shift today? Or any other day throughout the week?`

	clockOutOutOfRangeScript = `Hello, this is Rosella, I am calling from Independence Care, how are you doing today!

I have noticed your clock out is outside of the client's service area, and we are not able to accept that. Can you please go back and clock out from your client's house? Because we can't complete the visit without your clock out.

I apologize for the inconvenience this causes but we will not be able to mark your shift as completed without a clock out, so it is really important.`

	clockInAcceptedScript  = "Clock-in successful. Have a great shift!"
	clockOutAcceptedScript = "Clock-out successful. Thank you for your service today!"
	duplicateMessage       = "Duplicate call detected - no action required"
)
